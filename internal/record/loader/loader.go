package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/goliatone/go-docgen/pkg/record"
)

// Loader implements record.Loader by delegating to file or fs.FS strategies
// and applying the fail-fast validation policy before returning a record.
type Loader struct {
	fs fsProvider
}

// Ensure the implementation satisfies the public interface.
var _ record.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options record.LoaderOptions) *Loader {
	return &Loader{
		fs: fsProvider{fsys: options.FileSystem},
	}
}

// Load fetches the document bytes, decodes them, and validates presence of
// every field the document builder reads.
func (l *Loader) Load(ctx context.Context, src record.Source) (record.Estimate, error) {
	if src == nil {
		return record.Estimate{}, errors.New("record loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case record.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case record.SourceKindFS:
		data, err = l.fs.load(ctx, src.Location())
	default:
		err = errors.New("record loader: unsupported source kind")
	}
	if err != nil {
		return record.Estimate{}, err
	}

	return Decode(data, src.Location())
}

// Decode parses raw JSON into an Estimate and validates it. Exposed so batch
// and test callers holding bytes can skip the source indirection.
func Decode(data []byte, location string) (record.Estimate, error) {
	var est record.Estimate

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&est); err != nil {
		return record.Estimate{}, &record.ParseError{Location: location, Err: err}
	}

	if err := record.Validate(est, location); err != nil {
		return record.Estimate{}, err
	}
	return est, nil
}
