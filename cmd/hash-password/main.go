// Command hash-password prints bcrypt hashes suitable for seeding the users
// table directly, e.g. in fixtures or a first admin account.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/ledger-api/internal/service/auth"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := pflag.IntP("cost", "c", bcrypt.DefaultCost, "bcrypt cost")
	pflag.Parse()

	if err := run(os.Stdin, os.Stdout, *cost, pflag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run hashes every password given as an argument, or one per line of in
// when there are none.
func run(in io.Reader, out io.Writer, cost int, passwords []string) error {
	hasher, err := auth.NewBcryptHasher(cost)
	if err != nil {
		return err
	}

	if len(passwords) == 0 {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			passwords = append(passwords, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read passwords: %w", err)
		}
	}

	for _, password := range passwords {
		if password == "" {
			continue
		}
		hash, err := hasher.Hash(password)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, hash); err != nil {
			return err
		}
	}
	return nil
}
