package lispp

// Reader turns a Tokenizer's token stream into a tree of Values, per the
// grammar in spec.md §4.2:
//
//	object  := atom | quoted | list
//	atom    := Number | String | Symbol (#t / #f map to Boolean)
//	quoted  := ' object | ` object | , object
//	list    := '(' items ')'
//	items   := ε | object items | object '.' object ')'
type Reader struct {
	tok *Tokenizer
}

// NewReader creates a Reader over tok.
func NewReader(tok *Tokenizer) *Reader {
	return &Reader{tok: tok}
}

// HasObjects reports whether a further top-level object is available.
// When skipNewlines is true, leading newline tokens are first consumed.
func (r *Reader) HasObjects(skipNewlines bool) bool {
	if skipNewlines {
		r.skipNewlines()
	}
	tok, err := r.tok.Peek()
	if err != nil {
		// A malformed token still counts as "an object to try reading" so
		// the caller's ReadObject call surfaces the TokenizerError.
		return true
	}
	return tok.Kind != TokEnd && tok.Kind != TokNewline
}

// ReadObject reads and returns the next top-level Value. On error, the
// underlying tokenizer is cleared so a REPL can resynchronize on the
// next line.
func (r *Reader) ReadObject() (Value, *LispError) {
	v, err := r.readObject()
	if err != nil {
		r.tok.Clear()
		return nil, err
	}
	return v, nil
}

func (r *Reader) skipNewlines() {
	for {
		tok, err := r.tok.Peek()
		if err != nil || tok.Kind != TokNewline {
			return
		}
		r.tok.Next()
	}
}

func (r *Reader) readObject() (Value, *LispError) {
	r.skipNewlines()

	tok, err := r.tok.Next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case TokNumber:
		return Number(tok.Num), nil
	case TokString:
		return String(tok.Text), nil
	case TokSymbol:
		switch tok.Text {
		case "#t":
			return Boolean(true), nil
		case "#f":
			return Boolean(false), nil
		default:
			return Symbol(tok.Text), nil
		}
	case TokQuote:
		inner, err := r.readObject()
		if err != nil {
			return nil, err
		}
		return Quote{Inner: inner}, nil
	case TokComma:
		inner, err := r.readObject()
		if err != nil {
			return nil, err
		}
		return Unquote{Inner: inner}, nil
	case TokBacktick:
		inner, err := r.readObject()
		if err != nil {
			return nil, err
		}
		return Quasiquote{Inner: inner}, nil
	case TokOpenParen:
		return r.readList()
	case TokEnd:
		return NilValue, nil
	default:
		return nil, newParserError("unexpected token: %v", tok.Kind)
	}
}

// readList parses the items of a list after the opening '(' has already
// been consumed.
func (r *Reader) readList() (Value, *LispError) {
	r.skipNewlines()

	tok, err := r.tok.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokCloseParen {
		r.tok.Next()
		return NilValue, nil
	}

	left, err := r.readObject()
	if err != nil {
		return nil, err
	}

	tok, err = r.tok.Peek()
	if err != nil {
		return nil, err
	}

	var right Value
	switch tok.Kind {
	case TokDot:
		r.tok.Next()
		right, err = r.readObject()
		if err != nil {
			return nil, err
		}
		if err := r.expectCloseParen(); err != nil {
			return nil, err
		}
	case TokEnd:
		return nil, newParserError("unexpected end of file")
	default:
		right, err = r.readList()
		if err != nil {
			return nil, err
		}
	}

	return cons(left, right), nil
}

func (r *Reader) expectCloseParen() *LispError {
	tok, err := r.tok.Next()
	if err != nil {
		return err
	}
	if tok.Kind != TokCloseParen {
		return newParserError("expected ')' got %v", tok.Kind)
	}
	return nil
}
