package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/enoceanmqtt/internal/sensorconfig"
	"github.com/muurk/enoceanmqtt/internal/ui"
)

// Sensor command flags
var (
	listFormat string
	noRSSI     bool
	assumeYes  bool
)

func init() {
	rootCmd.AddCommand(sensorsCmd)
	sensorsCmd.AddCommand(sensorsListCmd, sensorsAddCmd, sensorsRemoveCmd)

	sensorsListCmd.Flags().StringVar(&listFormat, "format", "table", "Output format (table, compact, detailed, yaml)")
	sensorsAddCmd.Flags().BoolVar(&noRSSI, "no-rssi", false, "Do not publish the signal strength for this sensor")
	sensorsRemoveCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Remove without asking for confirmation")
}

var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "List, add and remove sensors in the config file",
}

var sensorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured sensors",
	Example: `  enoceanmqtt sensors list
  enoceanmqtt sensors list --format yaml -c ./enoceanmqtt.conf`,
	Args: cobra.NoArgs,
	RunE: runSensorsList,
}

func runSensorsList(cmd *cobra.Command, args []string) error {
	store, err := openStore(nil)
	if err != nil {
		return err
	}

	sensors, err := store.GetSensors()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch listFormat {
	case "compact":
		fmt.Fprint(out, sensorconfig.FormatSensorsCompact(sensors))
	case "detailed":
		fmt.Fprint(out, sensorconfig.FormatSensorsDetailed(sensors))
	case "yaml":
		data, err := sensorconfig.MarshalSensorsYAML(sensors)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
	case "table":
		fmt.Fprintln(out, ui.NewHeader("Sensors",
			ui.Param{Key: "Config", Value: store.Path()},
			ui.Param{Key: "Count", Value: fmt.Sprintf("%d", len(sensors))},
		))
		if len(sensors) == 0 {
			fmt.Fprintln(out, "No sensors configured.")
			return nil
		}
		fmt.Fprintln(out, ui.RenderTable(sensorTableHeaders, sensorRows(sensors)))
	default:
		return fmt.Errorf("unknown format %q (valid: table, compact, detailed, yaml)", listFormat)
	}

	return nil
}

var sensorTableHeaders = []string{"NAME", "ADDRESS", "EEP", "RSSI", "EXTRA"}

// sensorRows converts records to table cells.
func sensorRows(sensors []sensorconfig.SensorRecord) [][]string {
	rows := make([][]string, 0, len(sensors))
	for _, s := range sensors {
		address := ui.AbsentCell
		if !s.Address.IsAbsent() {
			address = s.FormatAddress()
		}

		rssi := ui.AbsentCell
		if !s.PublishRSSI.IsAbsent() {
			rssi = fmt.Sprintf("%v", s.PublishesRSSI())
		}

		extra := make([]string, 0, len(s.Extra))
		for _, f := range s.Extra {
			extra = append(extra, f.Key+"="+f.Value.String())
		}

		rows = append(rows, []string{s.Name, address, s.EEP(), rssi, strings.Join(extra, " ")})
	}
	return rows
}

var sensorsAddCmd = &cobra.Command{
	Use:   "add ADDRESS EEP",
	Short: "Add a sensor",
	Long: `Add a sensor section to the config file.

ADDRESS is the sensor's radio ID in hex. EEP is its EnOcean Equipment
Profile as three hex bytes RORG-FUNC-TYPE. Adding a sensor that already
exists changes nothing.`,
	Example: `  enoceanmqtt sensors add 0x01A64F7F D5-00-01
  enoceanmqtt sensors add FFD97F81 F6-02-01 --no-rssi`,
	Args: cobra.ExactArgs(2),
	RunE: runSensorsAdd,
}

func runSensorsAdd(cmd *cobra.Command, args []string) error {
	address, eep := args[0], args[1]

	code, err := sensorconfig.ParseProtocolCode(eep)
	if err != nil {
		return err
	}

	store, err := openStore(nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if address == sensorconfig.ReservedSection {
		return fmt.Errorf("%s is reserved for gateway settings", sensorconfig.ReservedSection)
	}
	if store.HasSensor(address) {
		fmt.Fprintln(out, ui.NewWarningResult("Sensor already exists",
			ui.Param{Key: "Address", Value: address}))
		return nil
	}

	if err := store.AddSensor(address, code.String(), !noRSSI); err != nil {
		return err
	}

	fmt.Fprintln(out, ui.NewSuccessResult("Sensor added",
		ui.Param{Key: "Address", Value: address},
		ui.Param{Key: "EEP", Value: code.String()},
		ui.Param{Key: "Publish RSSI", Value: fmt.Sprintf("%v", !noRSSI)},
		ui.Param{Key: "Config", Value: store.Path()},
	))
	return nil
}

var sensorsRemoveCmd = &cobra.Command{
	Use:   "remove ADDRESS",
	Short: "Remove a sensor",
	Example: `  enoceanmqtt sensors remove 0x01A64F7F
  enoceanmqtt sensors remove 0x01A64F7F --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runSensorsRemove,
}

func runSensorsRemove(cmd *cobra.Command, args []string) error {
	address := args[0]
	if address == sensorconfig.ReservedSection {
		return fmt.Errorf("refusing to remove %s, it holds the gateway settings", sensorconfig.ReservedSection)
	}

	store, err := openStore(nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !store.HasSensor(address) {
		fmt.Fprintln(out, ui.NewWarningResult("Sensor not found",
			ui.Param{Key: "Address", Value: address}))
		return nil
	}

	if !assumeYes {
		in := cmd.InOrStdin()
		if in == os.Stdin && !ui.IsInteractive() {
			return fmt.Errorf("stdin is not a terminal, pass --yes to remove %s", address)
		}
		warnings := []string{
			fmt.Sprintf("Section [%s] is deleted from %s", address, store.Path()),
			"Comments inside the section are lost",
		}
		if !ui.Confirm(in, out, "Remove sensor "+address, warnings, "Remove this sensor?") {
			return nil
		}
	}

	if err := store.RemoveSensor(address); err != nil {
		return err
	}

	fmt.Fprintln(out, ui.NewSuccessResult("Sensor removed",
		ui.Param{Key: "Address", Value: address},
		ui.Param{Key: "Config", Value: store.Path()},
	))
	return nil
}
