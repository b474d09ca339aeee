package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/maturity/internal/questionbank"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment statements",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("competency")
		long, _ := cmd.Flags().GetBool("long")

		bank := questionbank.Default()
		competencies := bank.Competencies()
		if filter != "" {
			c, ok := questionbank.ParseCompetency(filter)
			if !ok {
				return fmt.Errorf("unknown competency %q", filter)
			}
			competencies = []questionbank.Competency{c}
		}

		for i, c := range competencies {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(c)
			fmt.Println(strings.Repeat("─", 60))
			for _, q := range bank.ByCompetency(c) {
				fmt.Printf("%3d  %s\n", q.ID, q.Text)
				if long && q.HasDescription() {
					fmt.Printf("     %s\n", q.Description)
				}
			}
		}
		return nil
	},
}

func init() {
	questionsCmd.Flags().StringP("competency", "c", "", "Only list statements for this competency (full or short name)")
	questionsCmd.Flags().BoolP("long", "l", false, "Include descriptions")
}
