package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-portfolio-agent/internal/artifacts"
	"cv-portfolio-agent/internal/types"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Supports(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".pdf")
}

func (f *fakeExtractor) Extract(_ string) (string, error) {
	return f.text, f.err
}

type fakeAnalyzer struct {
	data *types.CVData
	err  error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, cvText string) (*types.CVData, error) {
	if f.err != nil {
		return nil, f.err
	}
	data := *f.data
	data.OriginalText = cvText
	return &data, nil
}

type fakeGenerator struct {
	html string
	err  error
}

func (f *fakeGenerator) Generate(_ context.Context, _ *types.CVData, _ string) (string, error) {
	return f.html, f.err
}

type fakeUI struct {
	selectPath  string
	selectErr   error
	selectCalls int
	successes   []string
	errors      []string
	infos       []string
}

func (f *fakeUI) SelectFile(_ string, _ []string) (string, error) {
	f.selectCalls++
	return f.selectPath, f.selectErr
}

func (f *fakeUI) ShowSuccess(_, message string) { f.successes = append(f.successes, message) }
func (f *fakeUI) ShowError(_, message string)   { f.errors = append(f.errors, message) }
func (f *fakeUI) ShowInfo(_, message string)    { f.infos = append(f.infos, message) }

func testData() *types.CVData {
	return &types.CVData{
		Personal: types.PersonalInfo{Name: "Jane Doe", Title: "Game Developer"},
	}
}

func newTestPipeline(t *testing.T, extractor *fakeExtractor, analyzer *fakeAnalyzer, generator *fakeGenerator, uiSvc *fakeUI, opts Options) (*Pipeline, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := artifacts.NewStore(dir)
	require.NoError(t, err)
	return New(extractor, analyzer, generator, store, uiSvc, opts), dir
}

func TestRunFullPipeline(t *testing.T) {
	uiSvc := &fakeUI{selectPath: "/tmp/jane_cv.pdf"}
	p, dir := newTestPipeline(t,
		&fakeExtractor{text: "Jane Doe\nGame Developer"},
		&fakeAnalyzer{data: testData()},
		&fakeGenerator{html: "<!DOCTYPE html><html><head></head><body class=\"aos-animate\"></body></html>"},
		uiSvc, Options{})

	outputPath, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, filepath.Base(outputPath), "jane_cv_portfolio_")
	assert.True(t, strings.HasSuffix(outputPath, ".html"))

	for _, name := range []string{"cv_raw_text.txt", "cv_extracted_data.json", "index.html", "run.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected artifact %s", name)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "cv_raw_text.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGame Developer", string(raw))

	dump, err := os.ReadFile(filepath.Join(dir, "cv_extracted_data.json"))
	require.NoError(t, err)
	assert.Contains(t, string(dump), "Jane Doe")

	require.Len(t, uiSvc.successes, 1)
	assert.Contains(t, uiSvc.successes[0], outputPath)
	assert.Empty(t, uiSvc.errors)
}

func TestRunDeclinedSelection(t *testing.T) {
	uiSvc := &fakeUI{selectPath: ""}
	p, dir := newTestPipeline(t,
		&fakeExtractor{text: "text"},
		&fakeAnalyzer{data: testData()},
		&fakeGenerator{html: "<html></html>"},
		uiSvc, Options{})

	outputPath, err := p.Run(context.Background())

	// Declining the picker is a quiet exit, not a failure
	require.NoError(t, err)
	assert.Empty(t, outputPath)
	assert.Empty(t, uiSvc.errors)
	assert.Empty(t, uiSvc.successes)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunConfiguredPathSkipsPicker(t *testing.T) {
	uiSvc := &fakeUI{}
	p, _ := newTestPipeline(t,
		&fakeExtractor{text: "cv text"},
		&fakeAnalyzer{data: testData()},
		&fakeGenerator{html: "<!DOCTYPE html><html></html>"},
		uiSvc, Options{CVPath: "/tmp/provided.pdf"})

	outputPath, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, uiSvc.selectCalls)
	assert.Contains(t, filepath.Base(outputPath), "provided_portfolio_")
}

func TestRunUnsupportedDocument(t *testing.T) {
	uiSvc := &fakeUI{}
	p, _ := newTestPipeline(t,
		&fakeExtractor{text: "cv text"},
		&fakeAnalyzer{data: testData()},
		&fakeGenerator{html: "<html></html>"},
		uiSvc, Options{CVPath: "/tmp/cv.docx"})

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported document type")
	require.Len(t, uiSvc.errors, 1)
}

func TestRunEmptyExtraction(t *testing.T) {
	uiSvc := &fakeUI{}
	p, dir := newTestPipeline(t,
		&fakeExtractor{text: "   \n\t "},
		&fakeAnalyzer{data: testData()},
		&fakeGenerator{html: "<html></html>"},
		uiSvc, Options{CVPath: "/tmp/cv.pdf"})

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text could be extracted")
	require.Len(t, uiSvc.errors, 1)

	_, statErr := os.Stat(filepath.Join(dir, "cv_raw_text.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunAnalyzerFailure(t *testing.T) {
	uiSvc := &fakeUI{}
	p, _ := newTestPipeline(t,
		&fakeExtractor{text: "cv text"},
		&fakeAnalyzer{err: errors.New("model request failed")},
		&fakeGenerator{html: "<html></html>"},
		uiSvc, Options{CVPath: "/tmp/cv.pdf"})

	_, err := p.Run(context.Background())
	require.Error(t, err)
	require.Len(t, uiSvc.errors, 1)
	assert.Contains(t, uiSvc.errors[0], "model request failed")
}

func TestRunGeneratorFailure(t *testing.T) {
	uiSvc := &fakeUI{}
	p, dir := newTestPipeline(t,
		&fakeExtractor{text: "cv text"},
		&fakeAnalyzer{data: testData()},
		&fakeGenerator{err: errors.New("model not loaded")},
		uiSvc, Options{CVPath: "/tmp/cv.pdf"})

	_, err := p.Run(context.Background())
	require.Error(t, err)
	require.Len(t, uiSvc.errors, 1)

	// Upstream artifacts survive the failed stage for debugging
	_, statErr := os.Stat(filepath.Join(dir, "cv_extracted_data.json"))
	assert.NoError(t, statErr)
}

func TestRunDegradedAnalysisStillGenerates(t *testing.T) {
	uiSvc := &fakeUI{}
	p, dir := newTestPipeline(t,
		&fakeExtractor{text: "cv text"},
		&fakeAnalyzer{data: &types.CVData{RawAnalysis: "prose description of the cv"}},
		&fakeGenerator{html: "<!DOCTYPE html><html></html>"},
		uiSvc, Options{CVPath: "/tmp/cv.pdf"})

	outputPath, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, outputPath)

	dump, err := os.ReadFile(filepath.Join(dir, "cv_extracted_data.json"))
	require.NoError(t, err)
	assert.Contains(t, string(dump), "prose description of the cv")
}
