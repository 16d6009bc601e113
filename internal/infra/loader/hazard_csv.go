// Package loader reads the offline reference datasets (hazard survey CSV and
// shelter GeoJSON) and stores them through the repositories.
package loader

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"hazardmap/internal/domain/entity"
	"hazardmap/internal/geo"

	"github.com/pkg/errors"
)

// Hazard survey columns.
const (
	colLat             = "lat"
	colLon             = "lon"
	colFloodScore      = "flood_score"
	colLandslideScore  = "landslide_score"
	colTsunamiScore    = "tsunami_score"
	colOverallRisk     = "overall_risk"
	colRiskDescription = "リスク一覧"
	colElevScore       = "elev_score"
	colSlopeScore      = "slope_score"
	colRiverScore      = "river_score"
)

// RowError describes a CSV line that was skipped.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return "line " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

// HazardCSV is the parsed content of a hazard survey file.
type HazardCSV struct {
	Records []*entity.HazardRecord
	// Rejected lists rows that could not be parsed. Rows without coordinates
	// are not rejected, they are dropped silently.
	Rejected []RowError
}

// ReadHazardCSV parses a hazard survey. Columns are located by header name so
// their order does not matter; only lat and lon are mandatory. Projected X/Y
// are computed for every record.
func ReadHazardCSV(r io.Reader) (*HazardCSV, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV header")
	}

	cols := indexColumns(header)
	for _, required := range []string{colLat, colLon} {
		if _, ok := cols[required]; !ok {
			return nil, errors.Errorf("CSV header is missing the %q column", required)
		}
	}

	out := &HazardCSV{}
	lineNum := 1 // header

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		lineNum++
		if readErr != nil {
			out.Rejected = append(out.Rejected, RowError{Line: lineNum, Err: readErr})

			continue
		}

		row := csvRow{cols: cols, values: record}
		if row.blank(colLat) || row.blank(colLon) {
			continue
		}

		hazard, parseErr := parseHazardRow(row)
		if parseErr != nil {
			out.Rejected = append(out.Rejected, RowError{Line: lineNum, Err: parseErr})

			continue
		}

		out.Records = append(out.Records, hazard)
	}

	return out, nil
}

func parseHazardRow(row csvRow) (*entity.HazardRecord, error) {
	lat, err := row.float(colLat)
	if err != nil {
		return nil, err
	}
	lon, err := row.float(colLon)
	if err != nil {
		return nil, err
	}

	record := &entity.HazardRecord{
		Lat:             lat,
		Lon:             lon,
		RiskDescription: row.text(colRiskDescription),
	}

	p := geo.Project(lat, lon)
	record.X, record.Y = p.X(), p.Y()

	ints := []struct {
		col string
		dst *int
	}{
		{colFloodScore, &record.FloodRisk},
		{colLandslideScore, &record.LandslideRisk},
		{colTsunamiScore, &record.TsunamiRisk},
		{colOverallRisk, &record.OverallRisk},
	}
	for _, f := range ints {
		if *f.dst, err = row.intOrZero(f.col); err != nil {
			return nil, err
		}
	}

	scores := []struct {
		col string
		dst **float64
	}{
		{colElevScore, &record.ElevScore},
		{colSlopeScore, &record.SlopeScore},
		{colRiverScore, &record.RiverScore},
	}
	for _, s := range scores {
		if *s.dst, err = row.optionalFloat(s.col); err != nil {
			return nil, err
		}
	}

	return record, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		// Spreadsheet exports often start with a UTF-8 BOM.
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		cols[name] = i
	}

	return cols
}

type csvRow struct {
	cols   map[string]int
	values []string
}

func (r csvRow) text(col string) string {
	idx, ok := r.cols[col]
	if !ok || idx >= len(r.values) {
		return ""
	}

	v := strings.TrimSpace(r.values[idx])
	if strings.EqualFold(v, "nan") {
		return ""
	}

	return v
}

func (r csvRow) blank(col string) bool {
	return r.text(col) == ""
}

func (r csvRow) float(col string) (float64, error) {
	v, err := strconv.ParseFloat(r.text(col), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("column %s: %q is not a number", col, r.text(col))
	}

	return v, nil
}

func (r csvRow) optionalFloat(col string) (*float64, error) {
	if r.blank(col) {
		return nil, nil
	}

	v, err := r.float(col)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// intOrZero accepts integral values written as floats ("2.0"), which is how
// pandas exports integer columns that contain gaps.
func (r csvRow) intOrZero(col string) (int, error) {
	if r.blank(col) {
		return 0, nil
	}

	v, err := r.float(col)
	if err != nil {
		return 0, err
	}

	return int(v), nil
}
