package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/spf13/cobra"
)

var incidentsCmd = &cobra.Command{
	Use:     "incidents",
	Aliases: []string{"ocorrencias"},
	Short:   "List and manage your incidents",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your incidents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		incidents, err := current.lifecycle.Reload(cmd.Context())
		if err != nil {
			return err
		}
		active, err := current.lifecycle.ActiveCount(cmd.Context())
		if err != nil {
			return err
		}
		printIncidents(cmd.OutOrStdout(), incidents)
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%d active of %d\n", active, len(incidents))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Change incident status (Aberta, Em Andamento, Finalizada)",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := models.Status(strings.Join(args[1:], " "))
		inc, err := current.lifecycle.ChangeStatus(cmd.Context(), args[0], status)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "incident %s is now %s\n", inc.ID, inc.Status)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an incident",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, err := cmd.Flags().GetBool("yes")
		if err != nil {
			return err
		}
		if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete incident %s?", args[0])) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
			return nil
		}
		if err := current.lifecycle.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "incident %s deleted\n", args[0])
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit description, address, reference point or priority",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := current.lifecycle.BeginEdit(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("description") {
			session.Description, _ = flags.GetString("description")
		}
		if flags.Changed("address") {
			session.Address, _ = flags.GetString("address")
		}
		if flags.Changed("reference") {
			session.ReferencePoint, _ = flags.GetString("reference")
		}
		if flags.Changed("priority") {
			p, _ := flags.GetString("priority")
			priority := models.Priority(p)
			if !priority.Valid() {
				return fmt.Errorf("unknown priority %q", p)
			}
			session.Priority = priority
		}

		inc, err := current.lifecycle.SaveEdit(cmd.Context(), session)
		if err != nil {
			return err
		}
		printIncidents(cmd.OutOrStdout(), []models.Incident{*inc})
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "skip confirmation")

	editCmd.Flags().String("description", "", "new description")
	editCmd.Flags().String("address", "", "new address")
	editCmd.Flags().String("reference", "", "new reference point")
	editCmd.Flags().String("priority", "", "new priority (low, medium, high)")

	incidentsCmd.AddCommand(listCmd, statusCmd, deleteCmd, editCmd)
}

func printIncidents(w io.Writer, incidents []models.Incident) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tPROTOCOL\tCATEGORY\tPRIORITY\tSTATUS\tADDRESS")
	for _, inc := range incidents {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			inc.ID, inc.Protocol, inc.Category.Label(), inc.Priority, inc.Status, inc.Address)
	}
	_ = tw.Flush()
}

func confirm(in io.Reader, out io.Writer, question string) bool {
	_, _ = fmt.Fprintf(out, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}
