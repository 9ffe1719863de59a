package main

import (
	"os"
	"strings"

	"github.com/99designs/keyring"
	"github.com/linkeddata/sesame"
)

const keyringService = "sesame-cli"

// connect builds a connection to the configured server and logs in with any
// credentials previously stored for it.
func connect() (*sesame.Connection, error) {
	var opts []sesame.ConnOption
	if debug {
		opts = append(opts, sesame.WithDebug(os.Stderr))
	}
	conn, err := sesame.NewConnection(serverAddr, opts...)
	if err != nil {
		return nil, err
	}
	if user, pass, ok := storedCredentials(); ok {
		if err := conn.Login(user, pass); err != nil {
			return nil, err
		}
	}
	return conn, nil
}

func openRepository() (*sesame.Repository, error) {
	conn, err := connect()
	if err != nil {
		return nil, err
	}
	return conn.Open(repoID)
}

func openRing() (keyring.Keyring, error) {
	return keyring.Open(keyring.Config{ServiceName: keyringService})
}

// storedCredentials looks the current server up in the OS keyring. Any
// keyring trouble just means no stored login.
func storedCredentials() (user, pass string, ok bool) {
	ring, err := openRing()
	if err != nil {
		return "", "", false
	}
	item, err := ring.Get(serverAddr)
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(string(item.Data), "\n", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func storeCredentials(user, pass string) error {
	ring, err := openRing()
	if err != nil {
		return err
	}
	return ring.Set(keyring.Item{Key: serverAddr, Data: []byte(user + "\n" + pass)})
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
