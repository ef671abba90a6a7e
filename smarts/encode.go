package smarts

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Encode writes the 17-card input deck for this configuration. The field
// layout of every card is fixed by the SMARTS 2.9.5 input specification:
// sub-cards are emitted only when the selecting option code takes the value
// that demands them, otherwise the line is omitted entirely so the engine
// reads exactly the lines it expects. The configuration is validated first;
// nothing is written for an invalid one.
func (c *Config) Encode(w io.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	line := func(format string, a ...interface{}) {
		fmt.Fprintf(&buf, format, a...)
		buf.WriteByte('\n')
	}

	// Card 1: comment, max 62 chars, spaces replaced by underscores, quoted.
	cmnt := c.Comment
	if runes := []rune(cmnt); len(runes) > 62 {
		cmnt = string(runes[0:61])
	}
	cmnt = strings.ReplaceAll(cmnt, " ", "_")
	line("'%s'", cmnt)

	// Card 2: site pressure.
	line("%d", c.Site.PressureMode)
	switch c.Site.PressureMode {
	case 0:
		line("%s", c.Site.Pressure)
	case 1:
		line("%s %s %s", c.Site.Pressure, c.Site.Altitude, c.Site.Height)
	case 2:
		line("%s %s %s", c.Site.Latitude, c.Site.Altitude, c.Site.Height)
	}

	// Card 3: atmosphere model.
	line("%d", c.Atmosphere.Mode)
	switch c.Atmosphere.Mode {
	case 0:
		line("%s %s %s %s", c.Atmosphere.AirTemp, c.Atmosphere.RelHumid,
			c.Atmosphere.Season, c.Atmosphere.DailyTemp)
	case 1:
		line("'%s'", c.Atmosphere.Reference)
	}

	// Card 4: water vapor. Card 4a is read only for IH2O = 0.
	line("%d", c.WaterVapor.Mode)
	if c.WaterVapor.Mode == 0 {
		line("%s", c.WaterVapor.Precipitable)
	}

	// Card 5: ozone abundance. Card 5a is read only for IO3 = 0.
	line("%d", c.Ozone.Mode)
	if c.Ozone.Mode == 0 {
		line("%s %s", c.Ozone.AltCorrection, c.Ozone.Abundance)
	}

	// Card 6: gaseous absorption and pollution.
	line("%d", c.Gas.Mode)
	if c.Gas.Mode == 0 {
		line("%d", c.Gas.Load)
		if c.Gas.Load == 0 {
			line("%s %s %s %s %s %s %s %s %s %s", c.Gas.CH2O, c.Gas.CH4,
				c.Gas.CO, c.Gas.HNO2, c.Gas.HNO3, c.Gas.NO, c.Gas.NO2,
				c.Gas.NO3, c.Gas.O3, c.Gas.SO2)
		}
	}

	// Card 7: CO2 abundance. Card 7a: extraterrestrial spectrum.
	line("%s", c.CO2.Abundance)
	line("%d", c.CO2.Spectrum)

	// Card 8: aerosol model. Card 8a is read only for the USER model.
	line("'%s'", c.Aerosol.Model)
	if c.Aerosol.Model == "USER" {
		line("%s %s %s %s", c.Aerosol.Alpha1, c.Aerosol.Alpha2,
			c.Aerosol.OmegaL, c.Aerosol.Asymmetry)
	}

	// Card 9: turbidity. Card 9a holds the single value selected by ITURB.
	line("%d", c.Turbidity.Mode)
	switch c.Turbidity.Mode {
	case 0:
		line("%s", c.Turbidity.Tau500)
	case 1:
		line("%s", c.Turbidity.Beta)
	case 2:
		line("%s", c.Turbidity.BChuep)
	case 3:
		line("%s", c.Turbidity.Range)
	case 4:
		line("%s", c.Turbidity.Visibility)
	case 5:
		line("%s", c.Turbidity.Tau550)
	}

	// Card 10: zonal albedo. Card 10a only for the fixed broadband value.
	line("%d", c.Albedo.Zonal)
	if c.Albedo.Zonal == -1 {
		line("%s", c.Albedo.ZonalBroadband)
	}

	// Card 10b: tilt flag. Cards 10c/10d only when tilt calculations are on.
	line("%d", c.Albedo.TiltMode)
	if c.Albedo.TiltMode == 1 {
		line("%d %s %s", c.Albedo.Local, c.Albedo.Tilt, c.Albedo.Azimuth)
		if c.Albedo.Local == -1 {
			line("%s", c.Albedo.LocalBroadband)
		}
	}

	// Card 11: spectral range.
	line("%s %s %s %s", c.Spectral.Min, c.Spectral.Max,
		c.Spectral.SunCorrection, c.Spectral.SolarConstant)

	// Card 12: output selection. Card 12a for spectral printing; Cards
	// 12b/12c for the spreadsheet file, with the variable count derived from
	// the requested codes.
	line("%d", c.Output.Print)
	if c.Output.Print >= 1 {
		line("%s %s %s", c.Output.Min, c.Output.Max, c.Output.Interval)
		if c.Output.Print == 2 || c.Output.Print == 3 {
			line("%d", len(c.Output.Codes))
			line("%s", joinCodes(c.Output.Codes))
		}
	}

	// Card 13: circumsolar radiometry.
	line("%d", c.Circumsolar.Mode)
	if c.Circumsolar.Mode == 1 {
		line("%s %s %s", c.Circumsolar.Slope, c.Circumsolar.Aperture,
			c.Circumsolar.Limit)
	}

	// Card 14: smoothing filter postprocessor.
	line("%d", c.Scan.Mode)
	if c.Scan.Mode == 1 {
		line("%s %s %s %s %s", c.Scan.Filter, c.Scan.Min, c.Scan.Max,
			c.Scan.Step, c.Scan.FWHM)
	}

	// Card 15: illuminance. Card 16: broadband UV.
	line("%d", c.Illuminance)
	line("%d", c.UV)

	// Card 17: solar position and air mass.
	line("%d", c.SolarPosition.Mode)
	switch c.SolarPosition.Mode {
	case 0:
		line("%s %s", c.SolarPosition.Zenith, c.SolarPosition.Azimuth)
	case 1:
		line("%s %s", c.SolarPosition.Elevation, c.SolarPosition.Azimuth)
	case 2:
		line("%s", c.SolarPosition.AirMass)
	case 3:
		line("%s %s %s %s %s %s %s", c.SolarPosition.Year,
			c.SolarPosition.Month, c.SolarPosition.Day, c.SolarPosition.Hour,
			c.SolarPosition.Latitude, c.SolarPosition.Longitude,
			c.SolarPosition.Zone)
	case 4:
		// The daily-calculation card is comma separated.
		line("%s, %s, %s", c.SolarPosition.Month, c.SolarPosition.Latitude,
			c.SolarPosition.DailyStep)
	}

	// Terminating blank line.
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteInputFile encodes the configuration into the named file.
func (c *Config) WriteInputFile(path string) error {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func joinCodes(codes []int) string {
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = strconv.Itoa(code)
	}
	return strings.Join(parts, " ")
}
