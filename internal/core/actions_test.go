package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type memorySaver struct {
	files map[string][]byte
	err   error
}

func (m *memorySaver) Save(name string, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[name] = data
	return "mem://" + name, nil
}

func TestDownloadFilename(t *testing.T) {
	tests := []struct {
		template  string
		overrides map[string]string
		want      string
	}{
		{template: "go-struct", want: "generated-go-struct.go"},
		{template: "ts-interface", want: "generated-ts-interface.ts"},
		{template: "python_dataclass", want: "generated-python_dataclass.py"},
		{template: "Rust.serde", want: "generated-Rust.serde.rs"},
		{template: "mystery", want: "generated-mystery.txt"},
		{template: "go-struct", overrides: map[string]string{"go-struct": ".golang"}, want: "generated-go-struct.golang"},
		{template: "zod-schema", overrides: map[string]string{"zod-schema": "ts"}, want: "generated-zod-schema.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, DownloadFilename(tt.template, tt.overrides))
		})
	}
}

func TestController_CopyResult(t *testing.T) {
	cb := &fakeClipboard{}
	c := NewController(NewFormState(), &fakeService{}, WithClipboard(cb))

	assert.ErrorIs(t, c.CopyResult(), ErrNoResult)

	c.State().FinishGeneration("type A struct{}")
	require.NoError(t, c.CopyResult())
	assert.Equal(t, "type A struct{}", cb.text)
}

func TestController_CopyResultFailureLeavesStateAlone(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("no display")}
	c := NewController(NewFormState(), &fakeService{}, WithClipboard(cb))
	c.State().FinishGeneration("code")
	before := c.State().Snapshot()

	err := c.CopyResult()

	assert.ErrorIs(t, err, ErrClipboard)
	assert.Equal(t, before, c.State().Snapshot())
}

func TestController_DownloadResult(t *testing.T) {
	saver := &memorySaver{}
	c := NewController(NewFormState(), &fakeService{}, WithSaver(saver))

	_, err := c.DownloadResult()
	assert.ErrorIs(t, err, ErrNoResult)

	c.State().SetTemplate("go-struct")
	c.State().FinishGeneration("package main")
	before := c.State().Snapshot()

	path, err := c.DownloadResult()

	require.NoError(t, err)
	assert.Equal(t, "mem://generated-go-struct.go", path)
	assert.Equal(t, []byte("package main"), saver.files["generated-go-struct.go"])
	assert.Equal(t, before, c.State().Snapshot())
}

func TestController_DownloadResultUsesExtensionOverrides(t *testing.T) {
	saver := &memorySaver{}
	c := NewController(NewFormState(), &fakeService{},
		WithSaver(saver),
		WithExtensions(map[string]string{"zod-schema": "ts"}),
	)
	c.State().SetTemplate("zod-schema")
	c.State().FinishGeneration("z.object({})")

	path, err := c.DownloadResult()

	require.NoError(t, err)
	assert.Equal(t, "mem://generated-zod-schema.ts", path)
}

func TestController_DownloadResultSaverFailure(t *testing.T) {
	saver := &memorySaver{err: errors.New("disk full")}
	c := NewController(NewFormState(), &fakeService{}, WithSaver(saver))
	c.State().SetTemplate("go-struct")
	c.State().FinishGeneration("code")

	_, err := c.DownloadResult()

	assert.EqualError(t, err, "disk full")
	assert.Empty(t, c.State().LastError())
}

func TestDirSaver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	saver := DirSaver{Dir: dir}

	path, err := saver.Save("generated-go-struct.go", []byte("package main\n"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "generated-go-struct.go"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package main\n", string(data))
}

func TestDirSaverRejectsPaths(t *testing.T) {
	saver := DirSaver{Dir: t.TempDir()}

	for _, name := range []string{"", "../escape.go", "sub/file.go"} {
		_, err := saver.Save(name, []byte("x"))
		assert.Error(t, err, name)
	}
}
