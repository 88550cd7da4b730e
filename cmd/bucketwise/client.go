package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"
	"time"

	"connectrpc.com/connect"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	pb "github.com/mmynk/bucketwise/pkg/proto"
	"github.com/mmynk/bucketwise/pkg/proto/protoconnect"
)

func (c *cli) rotationClient() protoconnect.RotationServiceClient {
	return protoconnect.NewRotationServiceClient(http.DefaultClient, c.cfg.ServerURL)
}

func (c *cli) memberClient() protoconnect.MemberServiceClient {
	return protoconnect.NewMemberServiceClient(http.DefaultClient, c.cfg.ServerURL)
}

func (c *cli) nextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show who buys the next bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.rotationClient().GetDashboard(cmd.Context(), connect.NewRequest(&pb.GetDashboardRequest{}))
			if err != nil {
				return err
			}
			printDashboard(cmd.OutOrStdout(), resp.Msg)
			return nil
		},
	}
}

func (c *cli) payCmd() *cobra.Command {
	var override bool
	cmd := &cobra.Command{
		Use:   "pay <member>",
		Short: "Record a bucket payment by member id or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			member, err := c.resolveMember(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			resp, err := c.rotationClient().RecordPayment(cmd.Context(), connect.NewRequest(&pb.RecordPaymentRequest{
				MemberId:   member.Id,
				IsOverride: override,
			}))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			msg := resp.Msg
			fmt.Fprintf(out, "Recorded %s from %s (%s)\n", msg.Payment.Amount, msg.Payment.MemberName, msg.Kind)
			if msg.Granted {
				fmt.Fprintf(out, "%s earned an exemption\n", msg.Payment.MemberName)
			}
			if len(msg.Consumed) > 0 {
				fmt.Fprintf(out, "Exemptions used: %d\n", len(msg.Consumed))
			}
			if msg.NextPayer != nil {
				fmt.Fprintf(out, "Next: %s\n", msg.NextPayer.Name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&override, "override", false, "Mark the payment as a manual override")
	return cmd
}

func (c *cli) historyCmd() *cobra.Command {
	var limit int32
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List payments, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.rotationClient().ListPayments(cmd.Context(), connect.NewRequest(&pb.ListPaymentsRequest{Limit: limit}))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(resp.Msg.Payments) == 0 {
				fmt.Fprintln(out, "No payments yet")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tMEMBER\tAMOUNT\tOVERRIDE")
			for _, p := range resp.Msg.Payments {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", humanize.Time(time.UnixMilli(p.Timestamp)), p.MemberName, p.Amount, yesNo(p.IsOverride))
			}
			return w.Flush()
		},
	}
	cmd.Flags().Int32Var(&limit, "limit", 10, "Show at most this many payments (0 for all)")
	return cmd
}

func (c *cli) tallyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tally",
		Short: "Show how much each member has paid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.rotationClient().GetTally(cmd.Context(), connect.NewRequest(&pb.GetTallyRequest{}))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MEMBER\tPAYMENTS\tOVERRIDES\tTOTAL\tLAST PAID")
			for _, t := range resp.Msg.Tallies {
				name := t.MemberName
				if !t.Active {
					name += " (inactive)"
				}
				last := "-"
				if t.LastPaidAt > 0 {
					last = humanize.Time(time.UnixMilli(t.LastPaidAt))
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", name, t.Payments, t.Overrides, t.TotalPaid, last)
			}
			fmt.Fprintf(w, "TOTAL\t\t\t%s\t\n", resp.Msg.TotalCollected)
			return w.Flush()
		},
	}
}

func (c *cli) resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the payment history and every exemption",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset deletes all payments and exemptions; pass --yes to confirm")
			}
			if _, err := c.rotationClient().ResetCycle(cmd.Context(), connect.NewRequest(&pb.ResetCycleRequest{Confirm: true})); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cycle reset")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}

func (c *cli) membersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage the rotation roster",
	}

	var all bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List members in rotation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.memberClient().ListMembers(cmd.Context(), connect.NewRequest(&pb.ListMembersRequest{IncludeInactive: all}))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ORDER\tID\tNAME\tPHONE\tEXEMPTIONS\tACTIVE")
			for _, m := range resp.Msg.Members {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", m.Order, m.Id, m.Name, m.Phone, m.Exemptions, yesNo(m.IsActive))
			}
			return w.Flush()
		},
	}
	list.Flags().BoolVar(&all, "all", false, "Include removed members")

	var phone string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a member at the end of the rotation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.memberClient().AddMember(cmd.Context(), connect.NewRequest(&pb.AddMemberRequest{
				Name:  args[0],
				Phone: phone,
			}))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", resp.Msg.Member.Name, resp.Msg.Member.Id)
			return nil
		},
	}
	add.Flags().StringVar(&phone, "phone", "", "Contact phone number")

	remove := &cobra.Command{
		Use:   "remove <member>",
		Short: "Remove a member from the rotation by id or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			member, err := c.resolveMember(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if _, err := c.memberClient().RemoveMember(cmd.Context(), connect.NewRequest(&pb.RemoveMemberRequest{MemberId: member.Id})); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", member.Name)
			return nil
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

// resolveMember finds a member by exact id, then by case-insensitive name
// among active members.
func (c *cli) resolveMember(ctx context.Context, ref string) (*pb.Member, error) {
	resp, err := c.memberClient().ListMembers(ctx, connect.NewRequest(&pb.ListMembersRequest{IncludeInactive: true}))
	if err != nil {
		return nil, err
	}

	for _, m := range resp.Msg.Members {
		if m.Id == ref {
			return m, nil
		}
	}

	var matches []*pb.Member
	for _, m := range resp.Msg.Members {
		if m.IsActive && strings.EqualFold(m.Name, strings.TrimSpace(ref)) {
			matches = append(matches, m)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no member matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%d members are named %q; use the member id", len(matches), ref)
	}
}

func printDashboard(out io.Writer, d *pb.GetDashboardResponse) {
	if d.NextPayer == nil {
		fmt.Fprintln(out, "No active members. Add one with: bucketwise members add <name>")
		return
	}

	fmt.Fprintf(out, "Next: %s", d.NextPayer.Name)
	if d.NextPayer.Phone != "" {
		fmt.Fprintf(out, " (%s)", d.NextPayer.Phone)
	}
	fmt.Fprintf(out, ", bucket costs %s\n", d.BucketCost)

	if d.LastPayment != nil {
		fmt.Fprintf(out, "Last: %s, %s\n", d.LastPayment.MemberName, humanize.Time(time.UnixMilli(d.LastPayment.Timestamp)))
	}

	if len(d.Exempted) > 0 {
		fmt.Fprintln(out, "Exempted:")
		for _, m := range d.Exempted {
			fmt.Fprintf(out, "  %s x%d\n", m.Name, m.Exemptions)
		}
	}

	if len(d.RecentPayments) > 0 {
		fmt.Fprintln(out, "Recent:")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, p := range d.RecentPayments {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", humanize.Time(time.UnixMilli(p.Timestamp)), p.MemberName, p.Amount)
		}
		w.Flush()
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
