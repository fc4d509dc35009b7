package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/boolcomb/nicesets/search"
)

// report is the serialized form of a search result.
type report struct {
	MaxSize    int             `json:"max_size"`
	Sets       [][]string      `json:"sets"`
	Conclusive bool            `json:"conclusive"`
	Stopped    string          `json:"stopped,omitempty"`
	Metadata   search.Metadata `json:"metadata"`
}

func newReport(res search.Result) report {
	r := report{
		MaxSize:    res.MaxSize,
		Sets:       make([][]string, len(res.Sets)),
		Conclusive: res.Conclusive,
		Stopped:    res.Stopped,
		Metadata:   res.Metadata,
	}
	for i, set := range res.Sets {
		names := make([]string, len(set))
		for j, c := range set {
			names[j] = c.String()
		}
		r.Sets[i] = names
	}
	return r
}

// emitResult prints the result to stdout, as JSON when asked, and
// optionally persists the JSON report to a file.
func emitResult(res search.Result, jsonOut bool, outPath string) error {
	r := newReport(res)
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encoding report")
		}
	} else {
		fmt.Printf("maximum nice set size: %d\n", res.MaxSize)
		for _, set := range res.Sets {
			fmt.Printf("  %s\n", set)
		}
		if !res.Conclusive {
			fmt.Printf("inconclusive: %s\n", res.Stopped)
		}
		fmt.Printf("pool=%d candidates=%d depth=%d mode=%s elapsed=%s\n",
			res.Metadata.PoolSize, res.Metadata.Candidates, res.Metadata.Depth,
			res.Metadata.Mode, res.Metadata.Elapsed.Round(time.Millisecond))
	}
	if outPath != "" {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding report")
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return errors.Wrap(err, "writing report")
		}
	}
	return nil
}
