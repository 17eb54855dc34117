package config

// Version is the application version, stamped at release time.
const Version = "0.3.1"
