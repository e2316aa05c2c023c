package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locheck/internal/adapters/parser/jliff"
	"locheck/internal/adapters/parser/tagmap"
	"locheck/internal/domain"
)

const jliffSample = `{
  "Source_language": "en-US",
  "Target_language": "de-DE",
  "Transunits": [
    {"unit id": "1", "transunit_id": "u1-s1", "Source": "Hi {{ph:1}}", "Target_translation": "Hallo {{ph:1}}"},
    {"unit id": "1", "transunit_id": "u1-s2", "Source": "Bye", "Target_translation": "Tschüss"}
  ]
}`

const tagmapSample = `{
  "placeholder_style": "double-curly",
  "units": [
    {"unit_id": "1", "segments": [
      {"segment_id": "1", "placeholders_in_order": [{"placeholder": "{{ph:1}}", "elem": "ph"}]},
      {"segment_id": "2", "placeholders_in_order": []}
    ]}
  ]
}`

type fakeFiles struct {
	created []*domain.File
}

func (f *fakeFiles) Create(_ context.Context, file *domain.File) error {
	file.ID = int64(len(f.created) + 1)
	f.created = append(f.created, file)
	return nil
}

func (f *fakeFiles) Get(context.Context, int64) (*domain.File, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeFiles) ListByProject(context.Context, int64) ([]*domain.File, error) {
	return nil, nil
}

func (f *fakeFiles) UpdateJliff(context.Context, int64, string, int64) error { return nil }
func (f *fakeFiles) Delete(context.Context, int64) error                     { return nil }

func TestImport(t *testing.T) {
	t.Parallel()

	files := &fakeFiles{}
	svc := New(files, jliff.New(), tagmap.New())

	res, err := svc.Import(context.Background(), ImportArgs{
		ProjectID:     7,
		Name:          "manual",
		JliffContent:  []byte(jliffSample),
		TagMapContent: []byte(tagmapSample),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.FileID)
	assert.Equal(t, 2, res.Units)
	assert.Equal(t, 2, res.Segments)

	require.Len(t, files.created, 1)
	f := files.created[0]
	assert.Equal(t, int64(7), f.ProjectID)
	assert.Equal(t, int64(1), f.Version)
	assert.NotEmpty(t, f.Hash)
	assert.Equal(t, jliffSample, f.JliffRaw)
}

func TestImportRejectsMalformedJliff(t *testing.T) {
	t.Parallel()

	files := &fakeFiles{}
	svc := New(files, jliff.New(), tagmap.New())
	_, err := svc.Import(context.Background(), ImportArgs{
		JliffContent:  []byte("{not json"),
		TagMapContent: []byte(tagmapSample),
	})
	require.Error(t, err)
	// Nothing persisted on parse failure.
	assert.Empty(t, files.created)
}

func TestImportRejectsMalformedTagMap(t *testing.T) {
	t.Parallel()

	files := &fakeFiles{}
	svc := New(files, jliff.New(), tagmap.New())
	_, err := svc.Import(context.Background(), ImportArgs{
		JliffContent:  []byte(jliffSample),
		TagMapContent: []byte("[]"),
	})
	require.Error(t, err)
	assert.Empty(t, files.created)
}
