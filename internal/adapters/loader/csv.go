// Package loader reads the offline clustering output into domain records.
//
// The players file is wide-form, one row per player, with the clustering run's
// PCA coordinates and per-cluster probabilities alongside the scouting
// attributes. The centroids file is long-form: one row per (cluster, attr, z).
// Column sets are validated against the expected schema up front; a missing
// column fails the load rather than silently defaulting.
package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/adityasharma624/Player-Role-Dashboard/internal/domain/model"
)

// AttributeColumns is the fixed scouting attribute schema, decided at load
// time. Unknown attribute columns in the file are ignored; missing ones are a
// load error.
var AttributeColumns = []string{
	"Pas", "Tec", "Vis", "Dec", "Fir", "Dri", "Fin",
	"Tck", "Mar", "Pos", "Ant", "Cmp", "Cnt", "Det",
	"Wor", "Sta", "Pac", "Str",
}

// Player file columns outside the attribute set.
const (
	colName    = "Name"
	colClub    = "Club"
	colCA      = "CA"
	colPA      = "PA"
	colCluster = "role_cluster"
	colPC1     = "pc1"
	colPC2     = "pc2"
)

// Centroid file columns.
const (
	colCenCluster = "cluster"
	colCenAttr    = "attr"
	colCenZ       = "z"
)

// Players loads player records from the CSV file at path.
func Players(ctx context.Context, path string) ([]model.PlayerRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer f.Close()
	return ReadPlayers(ctx, f)
}

// ReadPlayers parses player records from wide-form CSV data. Player ids are
// derived from row position, so a given file always yields the same ids.
func ReadPlayers(_ context.Context, r io.Reader) ([]model.PlayerRecord, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrParse, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range append([]string{colName, colCA, colPA, colCluster, colPC1, colPC2}, AttributeColumns...) {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	// The cluster count K is discovered from the contiguous run of
	// cluster_<i>_prob columns starting at zero.
	var probCols []int
	for i := 0; ; i++ {
		idx, ok := cols[fmt.Sprintf("cluster_%d_prob", i)]
		if !ok {
			break
		}
		probCols = append(probCols, idx)
	}
	if len(probCols) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, "cluster_0_prob")
	}

	var players []model.PlayerRecord
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrParse, row, err)
		}

		p := model.PlayerRecord{
			ID:          fmt.Sprintf("p%04d", row),
			DisplayName: strings.TrimSpace(rec[cols[colName]]),
			Attributes:  make(map[string]float64, len(AttributeColumns)),
		}
		if idx, ok := cols[colClub]; ok {
			p.Club = strings.TrimSpace(rec[idx])
		}
		if p.CurrentAbility, err = intField(rec, cols[colCA], row, colCA); err != nil {
			return nil, err
		}
		if p.PotentialAbility, err = intField(rec, cols[colPA], row, colPA); err != nil {
			return nil, err
		}
		if p.ClusterID, err = intField(rec, cols[colCluster], row, colCluster); err != nil {
			return nil, err
		}

		pc1, err := floatField(rec, cols[colPC1], row, colPC1)
		if err != nil {
			return nil, err
		}
		pc2, err := floatField(rec, cols[colPC2], row, colPC2)
		if err != nil {
			return nil, err
		}
		p.Coordinates = []float64{pc1, pc2}

		p.ClusterProbabilities = make([]float64, len(probCols))
		for i, idx := range probCols {
			if p.ClusterProbabilities[i], err = floatField(rec, idx, row, fmt.Sprintf("cluster_%d_prob", i)); err != nil {
				return nil, err
			}
		}

		for _, attr := range AttributeColumns {
			if p.Attributes[attr], err = floatField(rec, cols[attr], row, attr); err != nil {
				return nil, err
			}
		}

		players = append(players, p)
	}
	return players, nil
}

// Centroids loads cluster centroids from the CSV file at path.
func Centroids(ctx context.Context, path string) ([]model.ClusterCentroid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer f.Close()
	return ReadCentroids(ctx, f)
}

// ReadCentroids parses long-form centroid rows and folds them into one
// centroid per cluster id, ordered by id.
func ReadCentroids(_ context.Context, r io.Reader) ([]model.ClusterCentroid, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrParse, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colCenCluster, colCenAttr, colCenZ} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	grouped := make(map[int]map[string]float64)
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrParse, row, err)
		}

		id, err := intField(rec, cols[colCenCluster], row, colCenCluster)
		if err != nil {
			return nil, err
		}
		z, err := floatField(rec, cols[colCenZ], row, colCenZ)
		if err != nil {
			return nil, err
		}
		if grouped[id] == nil {
			grouped[id] = make(map[string]float64)
		}
		grouped[id][strings.TrimSpace(rec[cols[colCenAttr]])] = z
	}

	ids := make([]int, 0, len(grouped))
	for id := range grouped {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	centroids := make([]model.ClusterCentroid, 0, len(ids))
	for _, id := range ids {
		centroids = append(centroids, model.ClusterCentroid{ClusterID: id, Attributes: grouped[id]})
	}
	return centroids, nil
}

func floatField(rec []string, idx, row int, col string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[idx]), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d column %q: %v", ErrParse, row, col, err)
	}
	return v, nil
}

// intField accepts integral floats ("150.0") since spreadsheet exports often
// produce them.
func intField(rec []string, idx, row int, col string) (int, error) {
	s := strings.TrimSpace(rec[idx])
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d column %q: %v", ErrParse, row, col, err)
	}
	return int(f), nil
}
