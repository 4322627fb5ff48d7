package config

import "os"

// ShareBaseURL prefixes petition share codes in QR links.
var ShareBaseURL string

func init() {
	ShareBaseURL = os.Getenv("SHARE_BASE_URL")
	if ShareBaseURL == "" {
		ShareBaseURL = "https://3arida.ma/p/"
	}
}
