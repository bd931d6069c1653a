package main

import (
	"bytes"
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"cafemap/internal/usecase"
	"cafemap/internal/util"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

const (
	defaultFeaturedKeywords = "la viet,tùng,túi mơ,windmills,view,thô,phê la,eden,golf"
	fallbackAddress         = "Đà Lạt, Lâm Đồng"
)

// Scraped addresses sometimes hold only an Open Location Code such as "V8R2+4X".
var plusCodePattern = regexp.MustCompile(`^[A-Z0-9]+\+`)

//nolint:gochecknoglobals
var defaultTags = []string{"coffee", "da-lat"}

// payload is a raw import file read from a bucket.
type payload struct {
	Records  []usecase.ImportRecord
	Size     int64
	Checksum string
	Elapsed  time.Duration
}

// readPayload opens the bucket at sourceURL and decodes the JSON array stored under key.
func readPayload(ctx context.Context, sourceURL, key string) (*payload, error) {
	bucket, err := blob.OpenBucket(ctx, sourceURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", sourceURL)
	}
	defer bucket.Close()

	return readBucket(ctx, bucket, key)
}

func readBucket(ctx context.Context, bucket *blob.Bucket, key string) (*payload, error) {
	start := time.Now()

	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	digest, err := util.Checksum(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var records []usecase.ImportRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", key)
	}

	return &payload{
		Records:  records,
		Size:     digest.Size,
		Checksum: digest.SHA256,
		Elapsed:  time.Since(start),
	}, nil
}

// prepareRecords applies the scraped-data cleanup to every record in place.
func prepareRecords(records []usecase.ImportRecord, featuredKeywords []string) (featured int) {
	for i := range records {
		rec := &records[i]

		rec.Address = cleanAddress(rec.Address)
		if rec.Tags == nil {
			rec.Tags = append([]string(nil), defaultTags...)
		}
		if matchesKeyword(rec.Name, featuredKeywords) {
			rec.Featured = true
			rec.Verified = true
		}
		if rec.Featured {
			featured++
		}
	}

	return featured
}

func cleanAddress(address string) string {
	address = strings.TrimSpace(address)
	if address == "" || plusCodePattern.MatchString(address) {
		return fallbackAddress
	}

	return address
}

func matchesKeyword(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}

func splitKeywords(raw string) []string {
	var keywords []string
	for _, keyword := range strings.Split(raw, ",") {
		if keyword = strings.ToLower(strings.TrimSpace(keyword)); keyword != "" {
			keywords = append(keywords, keyword)
		}
	}

	return keywords
}
