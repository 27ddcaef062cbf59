package cmd

import (
	"bytes"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"
)

// PassphraseEnvVar overrides interactive prompting when set.
const PassphraseEnvVar = "CRYPTKIT_PASSPHRASE"

func getPassphrase(prompt string) (string, error) {
	if envPass := os.Getenv(PassphraseEnvVar); envPass != "" {
		return envPass, nil
	}
	pass, err := readPassword(prompt)
	if err != nil {
		return "", err
	}
	return string(pass), nil
}

func getPassphraseWithConfirm(prompt, confirmPrompt string) (string, error) {
	if envPass := os.Getenv(PassphraseEnvVar); envPass != "" {
		return envPass, nil
	}
	pass, err := readPassword(prompt)
	if err != nil {
		return "", err
	}
	confirm, err := readPassword(confirmPrompt)
	if err != nil {
		return "", err
	}
	if !bytes.Equal(pass, confirm) {
		return "", fmt.Errorf("passphrases do not match")
	}
	return string(pass), nil
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	return pass, nil
}
