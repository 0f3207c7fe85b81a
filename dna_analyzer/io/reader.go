package io

import (
	"DNA-Sequence-Analysis/dna_analyzer/config"
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
)

// fastaSymbols are the sequence-line characters fasta.Read accepts.
const fastaSymbols = "ACGTNacgtn-."

// ReadSequence reads a DNA sequence from a file.
// FASTA files (by extension) yield their first record, upper-cased;
// any other file is read whole with surrounding whitespace trimmed.
// Malformed FASTA input is reported as an error.
func ReadSequence(filePath string) (string, error) {
	if IsFasta(filePath) {
		return readFasta(filePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// IsFasta reports whether filePath has one of config.FastaExtensions.
func IsFasta(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	return slices.Contains(config.FastaExtensions, ext)
}

func readFasta(filePath string) (string, error) {
	// fasta.Read exits the process on malformed input, so it only sees files
	// that validateFasta accepts.
	if err := validateFasta(filePath); err != nil {
		return "", err
	}
	records := fasta.Read(filePath)
	if len(records) == 0 {
		return "", fmt.Errorf("no FASTA records in %s", filePath)
	}
	dna.AllToUpper(records[0].Seq)
	return dna.BasesToString(records[0].Seq), nil
}

// validateFasta checks that filePath is a regular file whose first line is a
// '>' header, that every header names its record, and that sequence lines
// hold only fastaSymbols. Blank lines are rejected.
func validateFasta(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", filePath)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<26)
	lineNum := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		lineNum++
		switch {
		case line == "":
			return fmt.Errorf("%s:%d: blank line in FASTA file", filePath, lineNum)
		case strings.HasPrefix(line, ">"):
			if strings.TrimSpace(line[1:]) == "" {
				return fmt.Errorf("%s:%d: FASTA header has no sequence name", filePath, lineNum)
			}
		case lineNum == 1:
			return fmt.Errorf("%s: FASTA file must start with a '>' header line", filePath)
		default:
			if i := strings.IndexFunc(line, func(r rune) bool { return !strings.ContainsRune(fastaSymbols, r) }); i >= 0 {
				return fmt.Errorf("%s:%d: invalid FASTA symbol %q", filePath, lineNum, line[i])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if lineNum == 0 {
		return fmt.Errorf("no FASTA records in %s", filePath)
	}
	return nil
}
