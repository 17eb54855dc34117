package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"
)

type SeedCmd struct {
	URL         string `arg:"--url,required" help:"Lanefinder base URL"`
	AdminSecret string `arg:"--admin-secret,required" help:"Admin secret for venue creation"`
	File        string `arg:"positional,required" help:"JSON file containing an array of venues"`
}

type ListCmd struct {
	URL     string `arg:"--url,required" help:"Lanefinder base URL"`
	State   string `arg:"--state" help:"Filter by state code"`
	City    string `arg:"--city" help:"Filter by city"`
	Amenity string `arg:"--amenity" help:"Filter by amenity tag"`
	Sort    string `arg:"--sort" default:"rating" help:"Sort order: rating or name"`
}

type args struct {
	Seed *SeedCmd `arg:"subcommand:seed" help:"Bulk-load venues from a JSON file"`
	List *ListCmd `arg:"subcommand:list" help:"List venues in the directory"`
}

func (args) Description() string {
	return "lanectl — operator tool for the Lanefinder venue directory"
}

func main() {
	var a args
	p := arg.MustParse(&a)

	switch {
	case a.Seed != nil:
		runSeed(a.Seed)
	case a.List != nil:
		runList(a.List)
	default:
		p.WriteUsage(os.Stdout)
		fmt.Println()
		p.WriteHelp(os.Stdout)
		os.Exit(1)
	}
}

type seedVenue struct {
	Name              string   `json:"name"`
	Address           string   `json:"address"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Zip               string   `json:"zip"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	Phone             string   `json:"phone"`
	Website           string   `json:"website"`
	Description       string   `json:"description"`
	Lanes             int32    `json:"lanes"`
	PricePerGameCents int32    `json:"price_per_game_cents"`
	ShoeRentalCents   int32    `json:"shoe_rental_cents"`
	Amenities         []string `json:"amenities"`
	Verified          bool     `json:"verified"`
}

func runSeed(cmd *SeedCmd) {
	data, err := os.ReadFile(cmd.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", cmd.File, err)
		os.Exit(1)
	}

	var venues []seedVenue
	if err := json.Unmarshal(data, &venues); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing %s: %v\n", cmd.File, err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	var created, skipped, failed int
	start := time.Now()

	for i, venue := range venues {
		body, _ := json.Marshal(venue)

		req, err := http.NewRequest(http.MethodPost, cmd.URL+"/api/venues", bytes.NewReader(body))
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nerror creating request: %v\n", err)
			failed++
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Lanefinder-Admin-Secret", cmd.AdminSecret)

		resp, err := client.Do(req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nerror creating venue %q: %v\n", venue.Name, err)
			failed++
			continue
		}
		resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			skipped++
		default:
			fmt.Fprintf(os.Stderr, "\nunexpected status %d for venue %d (%q)\n", resp.StatusCode, i+1, venue.Name)
			failed++
		}
		fmt.Fprintf(os.Stderr, "\rCreated: %d  Skipped: %d  Failed: %d", created, skipped, failed)
	}

	fmt.Fprintf(os.Stderr, "\nSeed complete: %s venues created, %d already existed, %d failed in %s\n",
		humanize.Comma(int64(created)), skipped, failed, time.Since(start).Round(time.Millisecond))
}

type listedVenue struct {
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	RatingAvg   float64   `json:"rating_avg"`
	RatingCount int32     `json:"rating_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func runList(cmd *ListCmd) {
	client := &http.Client{Timeout: 10 * time.Second}

	req, err := http.NewRequest(http.MethodGet, cmd.URL+"/api/venues", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating request: %v\n", err)
		os.Exit(1)
	}
	query := req.URL.Query()
	if cmd.State != "" {
		query.Set("state", cmd.State)
	}
	if cmd.City != "" {
		query.Set("city", cmd.City)
	}
	if cmd.Amenity != "" {
		query.Set("amenity", cmd.Amenity)
	}
	query.Set("sort", cmd.Sort)
	req.URL.RawQuery = query.Encode()

	resp, err := client.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error listing venues: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "unexpected status %d\n", resp.StatusCode)
		os.Exit(1)
	}

	var list struct {
		Venues []listedVenue `json:"venues"`
		Count  int           `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		fmt.Fprintf(os.Stderr, "error decoding response: %v\n", err)
		os.Exit(1)
	}

	for _, v := range list.Venues {
		fmt.Printf("%-40s  %s, %s  %.1f★ (%d)  updated %s\n",
			v.Name, v.City, v.State, v.RatingAvg, v.RatingCount, humanize.Time(v.UpdatedAt))
	}
	fmt.Printf("%s venues\n", humanize.Comma(int64(list.Count)))
}
