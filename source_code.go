package template

import (
	"crypto/sha1"
	"encoding/hex"
	"os"

	"github.com/pkg/errors"
)

// sourceCode is template text plus a short identity used in log records:
// the file path for files, a sha1 of the text otherwise.
type sourceCode struct {
	identity string
	code     string
}

func newSourceCode(code string) *sourceCode {
	return &sourceCode{code: code, identity: identityOf(code)}
}

func readSourceCode(path string) (*sourceCode, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading template %s", path)
	}

	return &sourceCode{code: string(bs), identity: path}, nil
}

func identityOf(code string) string {
	sum := sha1.Sum([]byte(code))

	return hex.EncodeToString(sum[:])
}
