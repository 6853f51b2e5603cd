package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "goldvault-cli",
		Short: "GoldVault CLI tool",
		Long:  `A command line interface for interacting with the GoldVault API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoldVault API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(branchCmd())
	rootCmd.AddCommand(holdingCmd())
	rootCmd.AddCommand(transactionsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func branchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Vendor branch operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Get a branch by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/branches/" + args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List branches",
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/branches")
		},
	})

	var source, destination, quantity string
	transferCmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer gold between branches",
		Run: func(cmd *cobra.Command, args []string) {
			doPost("/api/v1/branches/transfer", map[string]any{
				"source_branch_id":      mustAtoi(source),
				"destination_branch_id": mustAtoi(destination),
				"quantity":              quantity,
			})
		},
	}
	transferCmd.Flags().StringVar(&source, "from", "", "Source branch ID")
	transferCmd.Flags().StringVar(&destination, "to", "", "Destination branch ID")
	transferCmd.Flags().StringVar(&quantity, "quantity", "", "Gold quantity to move")
	cmd.AddCommand(transferCmd)

	return cmd
}

func holdingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holding",
		Short: "Virtual gold holding operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Get a holding by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/holdings/" + args[0])
		},
	})

	var quantity string
	convertCmd := &cobra.Command{
		Use:   "convert <id>",
		Short: "Convert part of a holding to physical gold",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doPost("/api/v1/holdings/"+args[0]+"/convert", map[string]any{
				"quantity": quantity,
			})
		},
	}
	convertCmd.Flags().StringVar(&quantity, "quantity", "", "Gold quantity to convert")
	cmd.AddCommand(convertCmd)

	return cmd
}

func transactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions",
		Short: "List recent transaction history",
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/transactions")
		},
	}
}

func doGet(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func doPost(path string, body map[string]any) {
	payload, err := json.Marshal(body)
	if err != nil {
		fmt.Printf("Error encoding request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		fmt.Println(string(body))
		return
	}

	printJSON(decoded)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func mustAtoi(s string) int64 {
	var n int64
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		fmt.Printf("Invalid numeric value %q\n", s)
		os.Exit(1)
	}
	return n
}
