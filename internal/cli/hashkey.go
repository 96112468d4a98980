package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/cli/style"
	apimw "github.com/martinlinchr/website-response-status-code-monitoring/internal/httpapi/middleware"
)

var hashKeyCmd = &cobra.Command{
	Use:   "hash-key",
	Short: "Generate an Argon2id hash for an API key",
	Long: `Reads an API key from stdin and prints its Argon2id hash.
Put the hash in PUBLIC_API_KEYS or ADMIN_API_KEYS instead of the raw key.`,
	RunE: runHashKey,
}

func init() {
	rootCmd.AddCommand(hashKeyCmd)
}

func runHashKey(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter API key: ")
	first, _ := reader.ReadString('\n')
	first = strings.TrimSpace(first)
	if first == "" {
		return errors.New("API key cannot be empty")
	}
	if len(first) < 16 {
		fmt.Println(style.Warning.Render("Key is short. 16+ random characters are recommended."))
	}

	fmt.Print("Confirm API key: ")
	second, _ := reader.ReadString('\n')
	second = strings.TrimSpace(second)
	if first != second {
		return errors.New("keys do not match")
	}

	hash, err := apimw.GenerateKeyHash(first)
	if err != nil {
		return fmt.Errorf("generate hash: %w", err)
	}

	fmt.Println()
	fmt.Println(style.Bold.Render("Hash generated. Configure the server with:"))
	fmt.Printf("\n  ADMIN_API_KEYS=%s\n\n", hash)
	fmt.Println(style.DimText.Render("Clients keep sending the raw key; only the server stores the hash."))
	return nil
}
