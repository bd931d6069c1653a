package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cafemap/internal/domain/entity"
	"cafemap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

const samplePayload = `[
  {"name": "Là Việt Coffee", "address": "200 Nguyen Cong Tru", "reviews": [{"rating": 5, "comment": "ngon"}]},
  {"name": "Tiệm Nhỏ", "address": "V8R2+4X Đà Lạt", "tags": ["quiet"]},
  {"name": "", "address": ""}
]`

func TestReadBucket(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	require.NoError(t, bucket.WriteAll(ctx, "cafes.json", []byte(samplePayload), nil))

	data, err := readBucket(ctx, bucket, "cafes.json")
	require.NoError(t, err)

	assert.Len(t, data.Records, 3)
	assert.Equal(t, int64(len(samplePayload)), data.Size)
	assert.Len(t, data.Checksum, 64)
	assert.Equal(t, 5, data.Records[0].Reviews[0].Rating)
}

func TestReadBucket_Errors(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	require.NoError(t, bucket.WriteAll(ctx, "broken.json", []byte(`{"name":`), nil))

	_, err := readBucket(ctx, bucket, "missing.json")
	assert.Error(t, err)

	_, err = readBucket(ctx, bucket, "broken.json")
	assert.Error(t, err)
}

func TestReadPayload_FileBucket(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cafes.json"), []byte(samplePayload), 0o600))

	data, err := readPayload(context.Background(), "file://"+dir, "cafes.json")
	require.NoError(t, err)
	assert.Len(t, data.Records, 3)
}

func TestPrepareRecords(t *testing.T) {
	records := []usecase.ImportRecord{
		{Name: "Là Việt Coffee", Address: "  200 Nguyen Cong Tru \n"},
		{Name: "Tiệm Nhỏ", Address: "V8R2+4X Đà Lạt", Tags: []string{"quiet"}},
		{Name: "Windmills Coffee", Address: ""},
		{Name: "Plain", Address: "1 Phan Dinh Phung", Featured: true},
	}

	featured := prepareRecords(records, splitKeywords(defaultFeaturedKeywords))
	assert.Equal(t, 2, featured)

	tests := []struct {
		name     string
		record   usecase.ImportRecord
		address  string
		tags     []string
		featured bool
		verified bool
	}{
		{name: "keyword without diacritics stays plain", record: records[0], address: "200 Nguyen Cong Tru", tags: defaultTags},
		{name: "plus code address is replaced", record: records[1], address: fallbackAddress, tags: []string{"quiet"}},
		{name: "keyword match is featured and verified", record: records[2], address: fallbackAddress, tags: defaultTags, featured: true, verified: true},
		{name: "explicit featured flag is kept", record: records[3], address: "1 Phan Dinh Phung", tags: defaultTags, featured: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.address, tt.record.Address)
			assert.Equal(t, tt.tags, tt.record.Tags)
			assert.Equal(t, tt.featured, tt.record.Featured)
			assert.Equal(t, tt.verified, tt.record.Verified)
		})
	}
}

func TestSplitKeywords(t *testing.T) {
	assert.Equal(t, []string{"la viet", "eden"}, splitKeywords(" La Viet, ,EDEN "))
	assert.Nil(t, splitKeywords(""))
}

func TestValidateRecords(t *testing.T) {
	records := []usecase.ImportRecord{
		{Name: "Good", Reviews: []usecase.ImportReview{{Rating: 4}}},
		{Name: ""},
		{Name: "!!!"},
		{Name: "Pricey", PriceRange: entity.PriceRange("$$$$$")},
		{Name: "Harsh", Reviews: []usecase.ImportReview{{Rating: 0}}},
		{Name: "good"},
	}

	problems := validateRecords(records)
	assert.Len(t, problems, 4)
}
