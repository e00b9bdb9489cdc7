package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-agent/internal/profile"
	"github.com/jonathan/job-agent/internal/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage resume profiles",
}

var profileCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new profile with guided prompts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store := profile.NewStore(cfg.ProfileDir)
		return createProfileInteractive(store, args[0], os.Stdin, os.Stdout)
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Replace an existing profile with pasted JSON",
	Long:  "Print the current profile JSON, then read a full replacement document from stdin (end with Ctrl+D, or type 'cancel' to abort). The replacement is schema-validated before it is saved.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store := profile.NewStore(cfg.ProfileDir)
		return editProfileInteractive(store, args[0], os.Stdin, os.Stdout)
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store := profile.NewStore(cfg.ProfileDir)
		names, err := store.List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintf(os.Stdout, "No profiles found.\n")
			return nil
		}
		for _, name := range names {
			fmt.Fprintf(os.Stdout, "- %s\n", name)
		}
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Display a profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store := profile.NewStore(cfg.ProfileDir)
		p, warning, err := store.Load(args[0])
		if err != nil {
			return err
		}
		if warning != "" {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
		}
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%s\n", data)
		return nil
	},
}

var profileValidateCmd = &cobra.Command{
	Use:   "validate <name>",
	Short: "Validate a profile against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store := profile.NewStore(cfg.ProfileDir)
		_, warning, err := store.Load(args[0])
		if err != nil {
			return err
		}
		if warning != "" {
			return fmt.Errorf("%s", warning)
		}
		fmt.Fprintf(os.Stdout, "Profile %q is valid.\n", args[0])
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileCreateCmd, profileEditCmd, profileListCmd, profileShowCmd, profileValidateCmd)
	rootCmd.AddCommand(profileCmd)
}

// createProfileInteractive prompts for the personal info section and seeds
// the remaining sections empty.
func createProfileInteractive(store *profile.Store, name string, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	prompt := func(label string) string {
		fmt.Fprintf(out, "%s: ", label)
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}

	fmt.Fprintf(out, "\nEntering personal information:\n")
	p := &types.Profile{
		PersonalInfo: types.PersonalInfo{
			Name:     prompt("Name"),
			Email:    prompt("Email"),
			Phone:    prompt("Phone"),
			LinkedIn: prompt("LinkedIn Profile URL"),
			GitHub:   prompt("GitHub Profile URL"),
		},
	}

	if err := store.Create(name, p); err != nil {
		return err
	}
	fmt.Fprintf(out, "Profile %q saved successfully.\n", name)
	return nil
}

// editProfileInteractive prints the current profile JSON and reads a full
// replacement document line by line until EOF. A lone "cancel" line aborts
// with nothing written.
func editProfileInteractive(store *profile.Store, name string, in io.Reader, out io.Writer) error {
	p, warning, err := store.Load(name)
	if err != nil {
		return err
	}
	if warning != "" {
		fmt.Fprintf(out, "Warning: %s\n", warning)
	}

	current, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nEditing profile: %s\n", name)
	fmt.Fprintf(out, "Current profile data (JSON format):\n%s\n", current)
	fmt.Fprintf(out, "\nPaste the updated JSON below, then press Ctrl+D when done.\n")
	fmt.Fprintf(out, "Or type 'cancel' to abort editing.\n")

	reader := bufio.NewReader(in)
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		trimmed := strings.TrimRight(line, "\n")
		if strings.EqualFold(strings.TrimSpace(trimmed), "cancel") {
			fmt.Fprintf(out, "Editing cancelled.\n")
			return nil
		}
		if trimmed != "" || err == nil {
			lines = append(lines, trimmed)
		}
		if err != nil {
			break
		}
	}

	if err := store.Replace(name, []byte(strings.Join(lines, "\n"))); err != nil {
		return err
	}
	fmt.Fprintf(out, "Profile %q saved successfully.\n", name)
	return nil
}
