package decoder_test

import (
	"context"
	"io"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/shlomaa/distributors-import/internal/decoder"
	"github.com/shlomaa/distributors-import/internal/decoder/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedFileName = "feed.xml"

func TestUnitParse(t *testing.T) {
	file := FeedFileAsReader(t)

	dec := decoder.Decoder{}

	entries, rowErrs, err := dec.Parse(context.TODO(), file)

	require.NoError(t, err, "should not return any error")
	assert.Equal(t, testdata.Entries, entries, "should correctly decode all products")
	assert.Equal(t, testdata.RowErrors, rowErrs,
		"should report skipped products and regions as row errors",
	)
}

func TestUnitParseBadXMLFormat(t *testing.T) {
	badFile := strings.NewReader("<products><product><id></product>")

	dec := decoder.Decoder{}

	entries, rowErrs, err := dec.Parse(context.TODO(), badFile)

	require.EqualError(t, err,
		"feed markup is malformed: XML syntax error on line 1: element <id> closed by </product>",
		"should return correct decoding error",
	)
	assert.Nil(t, entries, "should not return any entries")
	assert.Nil(t, rowErrs, "should not return any row errors")
}

func TestUnitParseEmptyFeed(t *testing.T) {
	dec := decoder.Decoder{}

	entries, rowErrs, err := dec.Parse(context.TODO(), strings.NewReader(""))

	require.ErrorIs(t, err, decoder.ErrEmptyFeed, "should return empty feed error")
	assert.Nil(t, entries, "should not return any entries")
	assert.Nil(t, rowErrs, "should not return any row errors")
}

func TestUnitParseNoProducts(t *testing.T) {
	dec := decoder.Decoder{}

	entries, rowErrs, err := dec.Parse(context.TODO(), strings.NewReader("<products></products>"))

	require.ErrorIs(t, err, decoder.ErrNoProducts, "should return no products error")
	assert.Nil(t, entries, "should not return any entries")
	assert.Nil(t, rowErrs, "should not return any row errors")
}

func TestUnitParsePrice(t *testing.T) {
	tests := map[string]struct {
		price string
		want  float64
	}{
		"comma separator":  {price: "129,99", want: 129.99},
		"dot separator":    {price: "129.99", want: 129.99},
		"whole number":     {price: "80", want: 80},
		"padded":           {price: " 15,50 ", want: 15.5},
		"not a number":     {price: "oops", want: 0},
		"empty":            {price: "", want: 0},
		"double separator": {price: "1,2,3", want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.want, decoder.ParsePrice(tt.price), 0.0001)
		})
	}
}

// FeedFileAsReader returns io.Reader with feed file.
func FeedFileAsReader(t *testing.T) io.Reader {
	t.Helper()

	f, err := os.Open(path.Join("testdata", feedFileName))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, f.Close())
	})

	return f
}
