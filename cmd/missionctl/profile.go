package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/missionhud/missionhud/client"
	"github.com/missionhud/missionhud/progression"
)

func newGetProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-profile",
		Short: "Show the user profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serviceURL)
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			p, err := c.GetProfile(ctx)
			if err != nil {
				return err
			}
			return printJSON(p)
		},
	}
}

func newSetAgentCmd() *cobra.Command {
	var agent string

	cmd := &cobra.Command{
		Use:   "set-agent",
		Short: "Set the cosmetic persona from the fixed agent catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if agent == "" {
				return fmt.Errorf("--agent is required")
			}
			c := client.New(serviceURL)
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			p, err := c.SetAgent(ctx, agent)
			if err != nil {
				return err
			}
			log.Info().Str("agent", agent).Msg("persona updated")
			return printJSON(p)
		},
	}
	cmd.Flags().StringVar(&agent, "agent", "", "Agent key, e.g. jett or sage")
	return cmd
}

func newProgressCmd() *cobra.Command {
	var offlineXP int

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show rank progression",
		Long:  "Shows the server-computed progression snapshot, or computes one offline from the default rank table when --xp is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("xp") {
				snap, err := progression.Compute(offlineXP, progression.DefaultTable(), nil, time.Now())
				if err != nil {
					return err
				}
				return printJSON(snap)
			}

			c := client.New(serviceURL)
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			g, err := c.GetGamification(ctx)
			if err != nil {
				return err
			}
			return printJSON(g)
		},
	}
	cmd.Flags().IntVar(&offlineXP, "xp", 0, "Compute offline from a cumulative XP total instead of asking the service")
	return cmd
}
