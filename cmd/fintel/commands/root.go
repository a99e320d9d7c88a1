package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fintel",
	Short: "Fintel - 금융 뉴스 기반 투자 성향 분석 및 상품 추천",
	Long: `Fintel Unified CLI

설문 기반 투자 성향 분석, 뉴스 수집/요약, 맞춤 상품 추천을 제공합니다.

Usage:
  go run ./cmd/fintel [command]

Examples:
  go run ./cmd/fintel api
  go run ./cmd/fintel crawl --keywords 금리,AI
  go run ./cmd/fintel recommend
  go run ./cmd/fintel test-db`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
