package cli_test

import (
	"strings"
	"testing"

	"github.com/kolladm/kolladm/internal/cli"
	"github.com/stretchr/testify/suite"
)

type CLISuite struct {
	suite.Suite
}

func TestCLI(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) TestRead() {
	reader := strings.NewReader("")
	s.Len(cli.Read(reader), 0)
	reader = strings.NewReader("node1\nnode2\n\nnode3\nnode4")
	s.Len(cli.Read(reader), 4)
}
