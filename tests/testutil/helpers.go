// Package testutil provides shared test helpers used across integration
// and e2e test packages.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SearchResponse is a published binary search result covering both
// built-in tracks: a Tumbleweed build, a Leap base build superseded by an
// update, and one experimental Tumbleweed build.
const SearchResponse = `<?xml version="1.0" encoding="UTF-8"?>
<collection matches="4">
  <binary name="neofetch" project="openSUSE:Factory" package="neofetch" repository="snapshot" version="7.1.0" release="1.1" arch="noarch" filename="neofetch-7.1.0-1.1.noarch.rpm" baseproject="openSUSE:Factory" type="rpm"/>
  <binary name="neofetch" project="openSUSE:Leap:15.2" package="neofetch" repository="standard" version="7.0.0" release="lp152.1.1" arch="noarch" filename="neofetch-7.0.0-lp152.1.1.noarch.rpm" baseproject="openSUSE:Leap:15.2" type="rpm"/>
  <binary name="neofetch" project="openSUSE:Leap:15.2:Update" package="neofetch.13254" repository="standard" version="7.1.0" release="lp152.2.3.1" arch="noarch" filename="neofetch-7.1.0-lp152.2.3.1.noarch.rpm" baseproject="openSUSE:Leap:15.2" type="rpm"/>
  <binary name="neofetch" project="utilities" package="neofetch" repository="openSUSE_Tumbleweed" version="7.1.0" release="2.4" arch="noarch" filename="neofetch-7.1.0-2.4.noarch.rpm" baseproject="openSUSE:Factory" type="rpm"/>
</collection>
`

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// StartSearchServer serves body on the published binary search path and
// returns the endpoint. The server is closed when the test ends.
func StartSearchServer(t *testing.T, body string) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/published/binary/id" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server.URL
}
