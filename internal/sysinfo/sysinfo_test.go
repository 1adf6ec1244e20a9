package sysinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSCTPEndpoints(t *testing.T) {
	table := ` ENDPT     SOCK   STY SST HBKT LPORT   UID INODE LADDRS
ffff8880345 ffff8880123 2   10  29   36412   0   21245 0.0.0.0
ffff8880346 ffff8880124 2   10  14   9899    0   21300 127.0.0.1
`

	ports := parseSCTPEndpoints(strings.NewReader(table))
	assert.Equal(t, []uint32{36412, 9899}, ports)
}

func TestParseSCTPEndpoints_EmptyTable(t *testing.T) {
	// Header only: no endpoints registered.
	table := " ENDPT     SOCK   STY SST HBKT LPORT   UID INODE LADDRS\n"
	assert.Empty(t, parseSCTPEndpoints(strings.NewReader(table)))
}

func TestParseSCTPEndpoints_SkipsShortLines(t *testing.T) {
	table := ` ENDPT     SOCK   STY SST HBKT LPORT   UID INODE LADDRS
garbage line
ffff8880345 ffff8880123 2   10  29   2905    0   21245 0.0.0.0
`
	assert.Equal(t, []uint32{2905}, parseSCTPEndpoints(strings.NewReader(table)))
}
