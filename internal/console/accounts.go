package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/zjrosen/registrar/internal/registration"
)

// WriteAccounts prints the seed accounts as a fixed-width table. Passwords are
// shown in angle brackets when reveal is true and masked otherwise.
func WriteAccounts(w io.Writer, seed registration.Config, reveal bool) {
	row := func(role, id, password string) {
		fmt.Fprintf(w, "%-15s %-15s %-25s\n", role, id, password)
	}
	secret := func(p string) string {
		if reveal {
			return "<" + p + ">"
		}
		return strings.Repeat("*", 8)
	}

	row("Role", "User ID", "Password")
	row("Admin", strings.ToLower(seed.AdminID), secret(seed.AdminPassword))
	for _, s := range seed.SeedStudents {
		row("Students", strings.ToLower(s.ID), secret(s.Password))
	}
}
