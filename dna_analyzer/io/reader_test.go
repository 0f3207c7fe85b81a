package io_test

import (
	"os"
	"path/filepath"
	"testing"

	"DNA-Sequence-Analysis/dna_analyzer/io"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadSequence_PlainText(t *testing.T) {
	path := writeFile(t, "query.txt", "  ACAACTATGCATACTATCGGGAACTATCCT\n\n")

	seq, err := io.ReadSequence(path)
	require.NoError(t, err)
	assert.Equal(t, "ACAACTATGCATACTATCGGGAACTATCCT", seq)
}

func TestReadSequence_Fasta(t *testing.T) {
	path := writeFile(t, "genome.fa", ">chr1 test\nacaactatgc\nATACTATCGG\nGAACTATCCT\n>chr2\nGGGG\n")

	seq, err := io.ReadSequence(path)
	require.NoError(t, err)
	assert.Equal(t, "ACAACTATGCATACTATCGGGAACTATCCT", seq)
}

func TestReadSequence_MissingFile(t *testing.T) {
	_, err := io.ReadSequence(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = io.ReadSequence(filepath.Join(t.TempDir(), "missing.fasta"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadSequence_MalformedFasta(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"no header", "ACGTACGT\n", "must start with a '>' header line"},
		{"empty file", "", "no FASTA records"},
		{"unnamed record", ">\nACGT\n", "has no sequence name"},
		{"invalid symbol", ">chr1\nACGXT\n", "invalid FASTA symbol 'X'"},
		{"blank line", ">chr1\nACGT\n\nACGT\n", "blank line"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "plain.fa", tc.content)

			seq, err := io.ReadSequence(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Empty(t, seq)
		})
	}
}

func TestReadSequence_FastaDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "genome.fa")
	require.NoError(t, os.Mkdir(dir, 0755))

	_, err := io.ReadSequence(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a regular file")
}

func TestIsFasta(t *testing.T) {
	assert.True(t, io.IsFasta("x.fa"))
	assert.True(t, io.IsFasta("dir/x.FASTA"))
	assert.True(t, io.IsFasta("x.fna"))
	assert.False(t, io.IsFasta("x.txt"))
	assert.False(t, io.IsFasta("fasta"))
}
