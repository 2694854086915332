package utils

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path"
	"strings"

	"github.com/PerformLine/go-stockutil/stringutil"
	"github.com/h2non/filetype"
)

// Problem holds a single matching instance as read from a problem file
type Problem struct {
	// Applicant desired prices
	Applicants []int
	// Apartment prices
	Apartments []int
	// Maximum allowed absolute difference for a valid pairing
	Tolerance int
}

// ReadProblem takes the path to a problem file in the file system and returns the parsed problem
func ReadProblem(path string, defaultTolerance int) (*Problem, error) {
	problemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ReadProblemFromBytes(problemBytes, defaultTolerance)
}

// ReadProblemFromBytes takes a byte slice and attempts to parse it into a problem.
// Byte slices that match a known binary format are rejected up front.
func ReadProblemFromBytes(problemBytes []byte, defaultTolerance int) (*Problem, error) {
	if kind, _ := filetype.Match(problemBytes); kind != filetype.Unknown {
		return nil, fmt.Errorf("input is a %s file, expected whitespace-separated integers", kind.Extension)
	}

	return ReadProblemFromReader(bytes.NewBuffer(problemBytes), defaultTolerance)
}

// ReadProblemFromReader takes an io.Reader and attempts to parse its contents into a problem.
// A first line holding exactly "n m k" or "n m" is the problem header, followed by n applicant
// values and m apartment values in free form; tokens beyond the promised values are ignored.
// When the header carries no k, defaultTolerance is used instead. Inputs whose first line is
// no standalone header are read as a single token stream starting with "n m k".
func ReadProblemFromReader(reader io.Reader, defaultTolerance int) (*Problem, error) {
	bufferedReader := bufio.NewReader(reader)

	headerLine, err := bufferedReader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}

	header, err := convertTokens(strings.Fields(headerLine))
	if err != nil {
		return nil, err
	}

	values, err := scanTokens(bufferedReader)
	if err != nil {
		return nil, err
	}

	var n, m int
	tolerance := defaultTolerance

	switch len(header) {
	case 2:
		n = header[0]
		m = header[1]
	case 3:
		n = header[0]
		m = header[1]
		tolerance = header[2]
	default:
		// No standalone header line, treat the whole input as one token stream
		stream := append(header, values...)
		if len(stream) < 2 {
			return nil, fmt.Errorf("problem header needs at least \"n m\", got %d tokens", len(stream))
		}

		n = stream[0]
		m = stream[1]
		values = stream[2:]

		// A stream of "n m k" plus values yields at least one token more than the n+m values it promises
		if len(values) > n+m {
			tolerance = values[0]
			values = values[1:]
		}
	}

	if n < 0 || m < 0 {
		return nil, fmt.Errorf("sequence sizes must not be negative, got n=%d m=%d", n, m)
	}
	if tolerance < 0 {
		return nil, fmt.Errorf("tolerance must not be negative, got %d", tolerance)
	}
	if len(values) < n+m {
		return nil, fmt.Errorf("problem promises %d values but contains %d", n+m, len(values))
	}

	problem := new(Problem)
	problem.Tolerance = tolerance
	problem.Applicants = values[:n]
	problem.Apartments = values[n : n+m]

	return problem, nil
}

// scanTokens reads whitespace-separated integer tokens from reader until it is exhausted
func scanTokens(reader io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)

	tokens := make([]string, 0)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return convertTokens(tokens)
}

// convertTokens converts a list of string tokens into integers
func convertTokens(tokens []string) ([]int, error) {
	numbers := make([]int, 0, len(tokens))
	for _, token := range tokens {
		number, err := stringutil.ConvertToInteger(token)
		if err != nil {
			return nil, fmt.Errorf("problem contains non-integer token %q: %w", token, err)
		}
		numbers = append(numbers, int(number))
	}

	return numbers, nil
}

// WriteProblem writes a problem to writer in the same format ReadProblemFromReader parses
func WriteProblem(writer io.Writer, problem *Problem) error {
	_, err := fmt.Fprintf(writer, "%d %d %d\n", len(problem.Applicants), len(problem.Apartments), problem.Tolerance)
	if err != nil {
		return err
	}

	for _, sequence := range [][]int{problem.Applicants, problem.Apartments} {
		for i, value := range sequence {
			if i > 0 {
				if _, err := fmt.Fprint(writer, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(writer, "%d", value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}

	return nil
}

// WriteImage encodes an image as either PNG or JPEG according to extension and writes it to writer.
// Note: extension needs to be prepended with a dot.
func WriteImage(img image.Image, writer io.Writer, extension string) (err error) {
	switch extension {
	case ".jpg":
		fallthrough
	case ".jpeg":
		err = jpeg.Encode(writer, img, nil)
	case ".png":
		err = png.Encode(writer, img)
	default:
		err = fmt.Errorf("unknown file extension: %q", extension)
	}

	return err
}

// WriteImageToFile encodes an image as either PNG or JPEG according to the extension of filePath and writes it to filePath.
func WriteImageToFile(img image.Image, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	extension := path.Ext(filePath)

	return WriteImage(img, file, extension)
}

// WriteFile writes data from an io.Reader to filePath
func WriteFile(filePath string, reader io.Reader) error {
	// Create file
	targetFile, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer targetFile.Close()

	// Read buffer
	bytes, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	// Write bytes
	_, err = targetFile.Write(bytes)
	return err
}
