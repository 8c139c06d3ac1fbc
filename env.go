package phishtank

import "os"

// FromEnv returns a Client whose API key is read from the
// PHISHTANK_API_KEY environment variable. The variable may be unset;
// the client then makes unauthenticated requests.
func FromEnv() *Client {
	return New(os.Getenv("PHISHTANK_API_KEY"))
}
