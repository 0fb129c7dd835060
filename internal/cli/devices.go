package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tessro/spotify-cli/internal/core"
	"github.com/tessro/spotify-cli/internal/wizard"
)

var devicesPick bool

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List available playback devices",
	Long: `Lists the Spotify Connect devices available to your account.
With --pick, choose one interactively and transfer playback to it.`,
	Args: cobra.NoArgs,
	RunE: runDevices,
}

func init() {
	devicesCmd.Flags().BoolVarP(&devicesPick, "pick", "p", false, "pick a device and transfer playback to it")
	rootCmd.AddCommand(devicesCmd)
}

func runDevices(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	p, err := connect(ctx)
	if err != nil {
		return err
	}
	devices, err := p.Devices(ctx)
	if err != nil {
		return err
	}

	if devicesPick {
		if !isTerminal() {
			return fmt.Errorf("--pick needs an interactive terminal")
		}
		if len(devices) == 0 {
			return fmt.Errorf("no devices found. Make sure Spotify is open on at least one device")
		}
		d, err := wizard.PickDevice(ctx, devices)
		if err != nil {
			return err
		}
		if d == nil {
			return result(out, "cancelled", "Nothing selected", nil)
		}
		if err := p.TransferPlayback(ctx, d.ID, true); err != nil {
			return err
		}
		return result(out, "transferred", "✓ Playback transferred to "+d.Name,
			map[string]any{"device_id": d.ID, "device": d.Name})
	}

	if JSONOutput() {
		if devices == nil {
			devices = []core.Device{}
		}
		return printJSON(out, devices)
	}
	if len(devices) == 0 {
		printf(out, "No devices found.")
		printf(out, "Make sure Spotify is open on at least one device.")
		return nil
	}

	t := NewTable(out, "", "NAME", "TYPE", "VOLUME", "ID")
	for _, d := range devices {
		t.Row(StatusIcon(d.Active), d.Name, string(d.Type), strconv.Itoa(d.Volume)+"%", d.ID)
	}
	t.Flush()
	return nil
}
