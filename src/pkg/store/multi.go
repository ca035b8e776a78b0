package store

import (
	"github.com/tuumbleweed/xerr"

	"docmint/src/pkg/docgen"
)

// Multi fans one Save out to every wrapped store (e.g. local dir plus S3).
// The first failure wins; earlier stores keep what they already wrote.
type Multi []docgen.Store

func (m Multi) Save(name string, data []byte) *xerr.Error {
	for _, s := range m {
		if e := s.Save(name, data); e != nil {
			return e
		}
	}
	return nil
}
