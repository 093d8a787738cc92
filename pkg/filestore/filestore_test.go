package filestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kolladm/kolladm/pkg/filestore"
	"github.com/stretchr/testify/suite"
)

type FilestoreSuite struct {
	suite.Suite
	Dir string
}

func TestFilestore(t *testing.T) {
	suite.Run(t, new(FilestoreSuite))
}

func (s *FilestoreSuite) SetupTest() {
	var err error
	s.Dir, err = os.MkdirTemp("", "filestore-test-")
	s.Require().NoError(err)
}

func (s *FilestoreSuite) TearDownTest() {
	s.Require().NoError(os.RemoveAll(s.Dir))
}

func (s *FilestoreSuite) TestReadMissing() {
	data, err := filestore.Read(filepath.Join(s.Dir, "nope.json"))
	s.NoError(err, "a missing file is not an error")
	s.Nil(data)
}

func (s *FilestoreSuite) TestWriteRead() {
	path := filepath.Join(s.Dir, "nested", "dir", "doc.json")

	s.Require().NoError(filestore.WriteAtomic(path, []byte("{}"), 0640))

	data, err := filestore.Read(path)
	s.Require().NoError(err)
	s.Equal("{}", string(data))

	info, err := os.Stat(path)
	s.Require().NoError(err)
	s.Equal(os.FileMode(0640), info.Mode().Perm())
}

func (s *FilestoreSuite) TestOverwrite() {
	path := filepath.Join(s.Dir, "doc.json")

	s.Require().NoError(filestore.WriteAtomic(path, []byte("first"), 0640))
	s.Require().NoError(filestore.WriteAtomic(path, []byte("second"), 0640))

	data, err := filestore.Read(path)
	s.Require().NoError(err)
	s.Equal("second", string(data))
}

func (s *FilestoreSuite) TestNoTempLeftovers() {
	path := filepath.Join(s.Dir, "doc.json")
	s.Require().NoError(filestore.WriteAtomic(path, []byte("data"), 0640))

	entries, err := os.ReadDir(s.Dir)
	s.Require().NoError(err)
	s.Len(entries, 1, "the temp file is renamed away")
}
