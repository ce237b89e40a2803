// Package conll reads and writes CoNLL-X style dependency files.
//
// Each token is one line of tab separated columns
//
//	ID FORM LEMMA CPOSTAG POSTAG FEATS HEAD DEPREL [PHEAD PDEPREL]
//
// and sentences are separated by blank lines. CoNLL-U multiword token
// ranges ("1-2") and empty nodes ("1.1") are skipped. Sentences are returned with
// the synthetic root token already at position 0.
package conll

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	nlp "github.com/habeanf/eisnerdep/nlp/types"

	"github.com/pkg/errors"
)

const (
	FIELD_SEPARATOR = '\t'
	MIN_FIELDS      = 8
	NUM_FIELDS      = 10
	EMPTY_FIELD     = "_"
	COMMENT_PREFIX  = "#"
	MAX_LINE_SIZE   = 1024 * 1024
)

func ParseInt(value string) (int, error) {
	i, err := strconv.ParseInt(value, 10, 0)
	return int(i), err
}

// ParseHead parses the HEAD column; "_" means the head is unknown.
func ParseHead(value string) (int, error) {
	if value == EMPTY_FIELD {
		return nlp.NO_HEAD, nil
	}
	return ParseInt(value)
}

func ParseRow(record []string) (nlp.Token, error) {
	var token nlp.Token
	if len(record) < MIN_FIELDS {
		return token, errors.Errorf("Expected at least %d fields, got %d", MIN_FIELDS, len(record))
	}
	id, err := ParseInt(record[0])
	if err != nil {
		return token, errors.Errorf("Error parsing ID field (%s): %s", record[0], err.Error())
	}
	token.ID = id

	if record[1] == "" {
		return token, errors.New("Empty FORM field")
	}
	token.Form = record[1]
	token.Lemma = record[2]
	token.CPosTag = record[3]
	token.PosTag = record[4]
	token.Feats = record[5]

	head, err := ParseHead(record[6])
	if err != nil {
		return token, errors.Errorf("Error parsing HEAD field (%s): %s", record[6], err.Error())
	}
	token.Head = head
	token.DepRel = record[7]
	return token, nil
}

func FormatRow(token nlp.Token) string {
	head := EMPTY_FIELD
	if token.Head != nlp.NO_HEAD {
		head = strconv.Itoa(token.Head)
	}
	fields := []string{
		strconv.Itoa(token.ID),
		token.Form,
		token.Lemma,
		token.CPosTag,
		token.PosTag,
		token.Feats,
		head,
		token.DepRel,
	}
	return strings.Join(fields, string(FIELD_SEPARATOR))
}

func isMultiwordOrEmpty(line string) bool {
	id := line
	if sep := strings.IndexByte(line, FIELD_SEPARATOR); sep >= 0 {
		id = line[:sep]
	}
	return strings.ContainsAny(id, "-.")
}

// Read parses sentences from reader. A positive limit stops after that many
// sentences.
func Read(reader io.Reader, limit int) ([]nlp.Sentence, error) {
	var (
		sentences []nlp.Sentence
		current   nlp.Sentence
		lineNum   int
	)
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), MAX_LINE_SIZE)

	flush := func() {
		if current != nil {
			sentences = append(sentences, current)
			current = nil
		}
	}
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			flush()
			if limit > 0 && len(sentences) >= limit {
				return sentences, nil
			}
			continue
		}
		if strings.HasPrefix(line, COMMENT_PREFIX) || isMultiwordOrEmpty(line) {
			continue
		}
		if current == nil {
			current = nlp.NewSentence()
		}
		token, err := ParseRow(strings.Split(line, string(FIELD_SEPARATOR)))
		if err != nil {
			return nil, errors.Wrapf(err, "Error processing line %d at sentence %d", lineNum, len(sentences))
		}
		if token.ID != len(current) {
			return nil, errors.Errorf("Error processing line %d at sentence %d: expected token ID %d, got %d",
				lineNum, len(sentences), len(current), token.ID)
		}
		current = append(current, token)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "Failure reading conll input")
	}
	flush()
	if limit > 0 && len(sentences) > limit {
		sentences = sentences[:limit]
	}
	return sentences, nil
}

func ReadFile(filename string, limit int) ([]nlp.Sentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file, limit)
}

// Write writes every non-root token of sents, one sentence per block.
func Write(writer io.Writer, sents []nlp.Sentence) error {
	w := bufio.NewWriter(writer)
	for _, sent := range sents {
		for _, token := range sent[1:] {
			if _, err := w.WriteString(FormatRow(token)); err != nil {
				return err
			}
			if err := w.WriteByte('\n'); err != nil {
				return err
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

func WriteFile(filename string, sents []nlp.Sentence) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(file, sents); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
