package shortener

import "github.com/sqids/sqids-go"

// RefEncoder turns numeric row ids into opaque public references.
type RefEncoder struct {
	sqids *sqids.Sqids
}

func NewRefEncoder() (*RefEncoder, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: 6,
	})
	if err != nil {
		return nil, err
	}
	return &RefEncoder{sqids: s}, nil
}

func (e *RefEncoder) Encode(id int64) (string, error) {
	return e.sqids.Encode([]uint64{uint64(id)})
}

func (e *RefEncoder) Decode(ref string) (int64, bool) {
	ids := e.sqids.Decode(ref)
	if len(ids) != 1 {
		return 0, false
	}
	// sqids accepts several spellings of one id; only the canonical one is valid
	if canonical, err := e.sqids.Encode(ids); err != nil || canonical != ref {
		return 0, false
	}
	return int64(ids[0]), true
}
