package models

import (
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Authority is the organizational unit responsible for a class of issues.
type Authority struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Directory lists every known authority in declaration order. Least-workload
// dispatch breaks ties by this order.
var Directory = []Authority{
	{Name: "Rajesh (Roads)", Phone: "9876543210"},
	{Name: "Priya (Water)", Phone: "9123456789"},
	{Name: "Amit (Sanitation)", Phone: "9988776655"},
	{Name: "Vikram (Municipal)", Phone: "9011223344"},
}

// DefaultAuthority receives issues whose category has no routing entry.
var DefaultAuthority = Directory[3]

// AuthorityByName looks up a directory entry by display name.
func AuthorityByName(name string) (Authority, bool) {
	for _, a := range Directory {
		if a.Name == name {
			return a, true
		}
	}
	return Authority{}, false
}

// Credential is one row of the static authority login table. The core does
// not manage accounts; this stands in for the identity collaborator.
type Credential struct {
	OfficialID   string
	PasswordHash []byte
	Authority    Authority
}

var credentials []Credential

func init() {
	// Static table; deployments override passwords via re-seeding. Hashing
	// happens once at startup so no plaintext sits in a comparable field.
	seed := []struct {
		id, pass string
		auth     Authority
	}{
		{"admin_roads", "pass123", Directory[0]},
		{"admin_water", "pass123", Directory[1]},
		{"admin_sanitation", "pass123", Directory[2]},
		{"admin_municipal", "pass123", Directory[3]},
	}
	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.pass), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash credential for %s: %v", s.id, err)
		}
		credentials = append(credentials, Credential{
			OfficialID:   s.id,
			PasswordHash: hash,
			Authority:    s.auth,
		})
	}
}

// Authenticate checks the official ID and password against the static table
// and returns the matching authority.
func Authenticate(officialID, password string) (Authority, bool) {
	for _, c := range credentials {
		if c.OfficialID != officialID {
			continue
		}
		if bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)) == nil {
			return c.Authority, true
		}
		return Authority{}, false
	}
	return Authority{}, false
}
