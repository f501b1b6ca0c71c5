package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/piwi3910/tcocompare/internal/export"
)

func cmdVendors(g *globalConfig) *cli.Command {
	return &cli.Command{
		Name:  "vendors",
		Usage: "List the vendors in the catalog",
		Action: func(ctx context.Context, c *cli.Command) error {
			cat, err := g.Catalog()
			if err != nil {
				return err
			}

			t := table{headers: []string{"ID", "Name", "Architecture", "License/Device/Yr", "Appliance", "Devices/FTE", "Zero Trust"}}
			for _, v := range cat.Vendors() {
				appliance := plain("none")
				if v.RequiresHardware() {
					appliance = num(export.Money(v.Pricing.ApplianceCost))
				}
				t.add(
					plain(v.ID),
					plain(v.Name),
					plain(string(v.Architecture)),
					num(fmt.Sprintf("$%.2f", v.Pricing.LicensePerDeviceYear)),
					appliance,
					num(fmt.Sprint(v.Staffing.DevicesPerFTE)),
					num(fmt.Sprintf("%.0f", v.Security.ZeroTrustScore)),
				)
			}
			t.render(c.Root().Writer)
			return nil
		},
	}
}
