package main

import (
	"context"
	"fmt"
	"strings"

	"cafemap/internal/domain/entity"
	"cafemap/internal/usecase"
	"cafemap/internal/util"

	"github.com/pkg/errors"
)

func runValidate(ctx context.Context, sourceURL, key string) error {
	fmt.Printf("Validating %s in %s\n", key, sourceURL)

	data, err := readPayload(ctx, sourceURL, key)
	if err != nil {
		return err
	}

	fmt.Printf("  size:     %s\n", util.FormatBytes(data.Size))
	fmt.Printf("  sha256:   %s\n", data.Checksum)
	fmt.Printf("  records:  %d\n", len(data.Records))

	problems := validateRecords(data.Records)
	for _, problem := range problems {
		fmt.Printf("  ! %s\n", problem)
	}
	if len(problems) > 0 {
		return errors.Errorf("%d problems found", len(problems))
	}

	fmt.Println("Validation passed")

	return nil
}

// validateRecords reports the records an import would skip or partially load.
func validateRecords(records []usecase.ImportRecord) []string {
	var problems []string
	seen := make(map[string]int, len(records))

	for i, rec := range records {
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			problems = append(problems, fmt.Sprintf("record %d: missing name", i))

			continue
		}
		if entity.Slugify(name) == "" {
			problems = append(problems, fmt.Sprintf("record %d (%s): name has no letters or digits", i, name))
		}
		if rec.PriceRange != "" && !rec.PriceRange.IsValid() {
			problems = append(problems, fmt.Sprintf("record %d (%s): invalid priceRange %q", i, name, rec.PriceRange))
		}
		for j, review := range rec.Reviews {
			if review.Rating < entity.MinRating || review.Rating > entity.MaxRating {
				problems = append(problems, fmt.Sprintf("record %d (%s): review %d has rating %d", i, name, j, review.Rating))
			}
		}

		if first, ok := seen[strings.ToLower(name)]; ok {
			// Duplicates still load under a suffixed slug.
			fmt.Printf("  note: record %d duplicates the name of record %d\n", i, first)
		} else {
			seen[strings.ToLower(name)] = i
		}
	}

	return problems
}
