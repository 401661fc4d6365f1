package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tvanriper/cargo3d"
)

func printText(o cargo3d.Outcome) {
	fmt.Printf("run %s: %d bin(s), %d unpacked item(s)\n", o.RunID, len(o.Results), len(o.Unpacked))
	for _, bin := range o.Results {
		fmt.Printf("  %s: %d carton(s), efficiency %.1f%%, weight %.1f%% of capacity",
			bin.BinID, bin.CartonCount, bin.Efficiency, bin.WeightCapacityPercent)
		if bin.BalanceWarning {
			fmt.Print(", BALANCE WARNING")
		}
		if bin.Weight6050Warning {
			fmt.Print(", 60/50 WARNING")
		}
		fmt.Println()
	}
	for _, it := range o.Unpacked {
		fmt.Printf("  unpacked: %s (%s)\n", it.ID, it.Name)
	}
}

func printJSON(o cargo3d.Outcome) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(o)
}
