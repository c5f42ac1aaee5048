package etl

import (
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Row-level helpers on top of the dataframe library. gota has no
// drop-duplicates primitive, so dedup works over the raw records.

const rowSep = "\x1f"

// dropDuplicateRows removes exact-duplicate rows, keeping first occurrences.
func dropDuplicateRows(df dataframe.DataFrame) dataframe.DataFrame {
	records := df.Records()
	if len(records) <= 1 {
		return df
	}

	seen := make(map[string]struct{}, len(records)-1)
	keep := make([]int, 0, len(records)-1)
	for i, row := range records[1:] {
		key := strings.Join(row, rowSep)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}
	if len(keep) == len(records)-1 {
		return df
	}
	return df.Subset(keep)
}

// dropRowsWithEmpty removes rows with a missing value in any column.
func dropRowsWithEmpty(df dataframe.DataFrame) dataframe.DataFrame {
	records := df.Records()
	if len(records) <= 1 {
		return df
	}

	keep := make([]int, 0, len(records)-1)
	for i, row := range records[1:] {
		complete := true
		for _, v := range row {
			if strings.TrimSpace(v) == "" {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(records)-1 {
		return df
	}
	return df.Subset(keep)
}

// dropRowsWhere removes rows for which pred holds on the named column.
func dropRowsWhere(df dataframe.DataFrame, col string, pred func(string) bool) dataframe.DataFrame {
	vals := df.Col(col).Records()
	keep := make([]int, 0, len(vals))
	for i, v := range vals {
		if !pred(v) {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(vals) {
		return df
	}
	return df.Subset(keep)
}

// mutateColumn rewrites the named string column in place through fn.
func mutateColumn(df dataframe.DataFrame, col string, fn func(string) string) dataframe.DataFrame {
	vals := df.Col(col).Records()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = fn(v)
	}
	return df.Mutate(series.New(out, series.String, col))
}

// deriveColumn appends (or replaces) a string column computed from another.
func deriveColumn(df dataframe.DataFrame, from, to string, fn func(string) string) dataframe.DataFrame {
	vals := df.Col(from).Records()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = fn(v)
	}
	return df.Mutate(series.New(out, series.String, to))
}

// dropNonUniqueKeys removes every row whose value in col occurs more than
// once, so the surviving values are unique within the table.
func dropNonUniqueKeys(df dataframe.DataFrame, col string) dataframe.DataFrame {
	vals := df.Col(col).Records()
	counts := make(map[string]int, len(vals))
	for _, v := range vals {
		counts[v]++
	}

	keep := make([]int, 0, len(vals))
	for i, v := range vals {
		if counts[v] == 1 {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(vals) {
		return df
	}
	return df.Subset(keep)
}

// uniqueValues returns the distinct non-empty values of the named column,
// in first-seen order.
func uniqueValues(df dataframe.DataFrame, col string) []string {
	vals := df.Col(col).Records()
	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
