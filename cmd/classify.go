package main

import (
	"fmt"
	"strconv"

	"skychart/pkg/zodiac"

	"github.com/spf13/cobra"
)

// classifyCommand prints the zodiac placement of a single longitude.
func classifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <longitude>",
		Short: "Classifies an ecliptic longitude",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			longitude, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("could not parse longitude: %w", err)
			}
			speed, _ := cmd.Flags().GetFloat64("speed")

			c, err := zodiac.Classify(longitude, speed)
			if err != nil {
				return fmt.Errorf("could not classify longitude: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Longitude: %.4f\n", c.Longitude)
			fmt.Fprintf(out, "Sign: %s %s (%s, #%d)\n", c.Sign, c.Emoji(), c.Sign.Abbreviation(), c.Sign.Index()+1)
			fmt.Fprintf(out, "Element: %s\n", c.Element())
			fmt.Fprintf(out, "Quality: %s\n", c.Quality())
			fmt.Fprintf(out, "Degree in sign: %.4f\n", c.DegreeWithinSign)
			fmt.Fprintf(out, "House: %s\n", c.House.Label())
			fmt.Fprintf(out, "Retrograde: %t\n", c.Retrograde)

			return nil
		},
	}

	cmd.Flags().Float64("speed", 0, "Longitude speed in degrees per day; negative is retrograde")

	return cmd
}
