package command

import (
	"strconv"
	"strings"

	"github.com/gradekeep/gradekeep/internal/record"
	"github.com/gradekeep/gradekeep/internal/store"
	"github.com/gradekeep/gradekeep/internal/view"
)

// Parse turns one raw command line into a typed Command. Verbs are
// case-insensitive. Unrecognized input parses as Unknown; only
// structurally broken arguments (missing keys, bad numbers,
// unterminated quotes) return a *ParseError.
func Parse(line string) (Command, error) {
	trimmed := strings.TrimSpace(line)
	words := strings.Fields(strings.ToUpper(trimmed))
	if len(words) == 0 {
		return Unknown{}, nil
	}

	switch words[0] {
	case "EXIT", "QUIT":
		return Exit{}, nil

	case "HELP":
		return Help{}, nil

	case "OPEN":
		return Open{Path: unquoteArg(restAfterWords(trimmed, 1))}, nil

	case "SAVE":
		return Save{Path: unquoteArg(restAfterWords(trimmed, 1))}, nil

	case "SHOW":
		return parseShow(words)

	case "INSERT":
		return parseInsert(trimmed)

	case "QUERY":
		id, err := readID(trimmed)
		if err != nil {
			return nil, err
		}
		return Query{ID: id}, nil

	case "UPDATE":
		return parseUpdate(trimmed)

	case "DELETE":
		id, err := readID(trimmed)
		if err != nil {
			return nil, err
		}
		return Delete{ID: id}, nil

	case "FIND":
		return parseFind(trimmed, words)

	case "IMPORT":
		if len(words) >= 2 {
			switch words[1] {
			case "CSV":
				return ImportCSV{Path: unquoteArg(restAfterWords(trimmed, 2))}, nil
			case "DB":
				return ImportDB{Path: unquoteArg(restAfterWords(trimmed, 2))}, nil
			}
		}
		return Unknown{Verb: strings.Join(words, " ")}, nil

	case "EXPORT":
		if len(words) >= 2 {
			switch words[1] {
			case "CSV":
				return ExportCSV{Path: unquoteArg(restAfterWords(trimmed, 2))}, nil
			case "SQL":
				return ExportSQL{Path: unquoteArg(restAfterWords(trimmed, 2))}, nil
			case "DB":
				return ExportDB{Path: unquoteArg(restAfterWords(trimmed, 2))}, nil
			}
		}
		return Unknown{Verb: strings.Join(words, " ")}, nil

	case "BACKUP":
		return Backup{}, nil
	}

	return Unknown{Verb: words[0]}, nil
}

// parseShow handles SHOW ALL [SORT BY ID|MARK [ASC|DESC]] and
// SHOW SUMMARY. Word-level matching keeps the verbs unambiguous.
func parseShow(words []string) (Command, error) {
	if len(words) == 2 && words[1] == "SUMMARY" {
		return ShowSummary{}, nil
	}
	if len(words) >= 2 && words[1] == "ALL" {
		cmd := ShowAll{Field: view.SortNone, Direction: view.Ascending}
		rest := words[2:]
		if len(rest) == 0 {
			return cmd, nil
		}
		if len(rest) < 3 || rest[0] != "SORT" || rest[1] != "BY" {
			return Unknown{Verb: strings.Join(words, " ")}, nil
		}
		switch rest[2] {
		case "ID":
			cmd.Field = view.SortByID
		case "MARK":
			cmd.Field = view.SortByMark
		default:
			return Unknown{Verb: strings.Join(words, " ")}, nil
		}
		switch {
		case len(rest) == 3:
		case len(rest) == 4 && rest[3] == "ASC":
		case len(rest) == 4 && rest[3] == "DESC":
			cmd.Direction = view.Descending
		default:
			return Unknown{Verb: strings.Join(words, " ")}, nil
		}
		return cmd, nil
	}
	return Unknown{Verb: strings.Join(words, " ")}, nil
}

func parseInsert(line string) (Command, error) {
	id, err := readID(line)
	if err != nil {
		return nil, err
	}
	name, err := requireKey(line, "Name")
	if err != nil {
		return nil, err
	}
	programme, err := requireKey(line, "Programme")
	if err != nil {
		return nil, err
	}
	markText, err := requireKey(line, "Mark")
	if err != nil {
		return nil, err
	}
	mark, err := parseMark(markText)
	if err != nil {
		return nil, err
	}
	return Insert{Rec: record.New(id, name, programme, mark)}, nil
}

func parseUpdate(line string) (Command, error) {
	id, err := readID(line)
	if err != nil {
		return nil, err
	}

	var patch store.Patch
	if v, ok, err := ReadKeyValue(line, "Name"); err != nil {
		return nil, err
	} else if ok {
		patch.Name = &v
	}
	if v, ok, err := ReadKeyValue(line, "Programme"); err != nil {
		return nil, err
	} else if ok {
		patch.Programme = &v
	}
	if v, ok, err := ReadKeyValue(line, "Mark"); err != nil {
		return nil, err
	} else if ok {
		mark, err := parseMark(v)
		if err != nil {
			return nil, err
		}
		patch.Mark = &mark
	}
	return Update{ID: id, Patch: patch}, nil
}

func parseFind(trimmed string, words []string) (Command, error) {
	if len(words) >= 2 {
		switch words[1] {
		case "NAME":
			return Find{Field: view.SearchByName, Needle: unquoteArg(restAfterWords(trimmed, 2))}, nil
		case "PROGRAMME":
			return Find{Field: view.SearchByProgramme, Needle: unquoteArg(restAfterWords(trimmed, 2))}, nil
		}
	}
	return Unknown{Verb: strings.Join(words, " ")}, nil
}

// readID extracts and parses the required ID key from a command line.
func readID(line string) (int32, error) {
	text, err := requireKey(line, "ID")
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, &ParseError{Kind: ErrKindInvalidNumber, Key: "ID"}
	}
	return int32(id), nil
}

func requireKey(line, key string) (string, error) {
	v, ok, err := ReadKeyValue(line, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &ParseError{Kind: ErrKindMissingKey, Key: key}
	}
	return v, nil
}

func parseMark(text string) (float32, error) {
	mark, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, &ParseError{Kind: ErrKindInvalidNumber, Key: "Mark"}
	}
	return float32(mark), nil
}

// restAfterWords returns the remainder of s after skipping n
// whitespace-delimited words, with leading whitespace removed.
func restAfterWords(s string, n int) string {
	i := 0
	for w := 0; w < n; w++ {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		for i < len(s) && !isSpace(s[i]) {
			i++
		}
	}
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// unquoteArg strips one pair of surrounding double quotes from an
// argument. With no closing quote the text is returned as typed.
func unquoteArg(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' {
		if end := strings.LastIndexByte(s[1:], '"'); end >= 0 {
			return s[1 : 1+end]
		}
		return s[1:]
	}
	return s
}
