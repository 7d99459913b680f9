// Package instruction parses the colon-separated single-instruction
// grammar accepted by exec mode and the interactive shell:
//
//	versionsList:{group}.{name}
//	downloadInfos:{group}.{name}:{version}
//	download:{group}.{name}:{version}
//	i
//
// The dotted coordinate splits on its last dot: everything before is
// the group, the final segment is the name.
package instruction

import (
	"strings"

	"github.com/pkg/errors"
)

type Kind int

const (
	// KindInteractive enters the interactive shell.
	KindInteractive Kind = iota
	KindVersionsList
	KindDownloadInfos
	KindDownload
)

type Instruction struct {
	Kind    Kind
	Group   string
	Name    string
	Version string
}

// SplitCoordinate splits "group.name" on the last dot.
func SplitCoordinate(coordinate string) (group, name string, err error) {
	i := strings.LastIndex(coordinate, ".")
	if i <= 0 || i == len(coordinate)-1 {
		return "", "", errors.Errorf("coordinate %q must match {group}.{name}", coordinate)
	}
	return coordinate[:i], coordinate[i+1:], nil
}

// Parse parses a single instruction line.
func Parse(line string) (*Instruction, error) {
	line = strings.TrimSpace(line)
	if line == "i" {
		return &Instruction{Kind: KindInteractive}, nil
	}

	parts := strings.Split(line, ":")
	switch parts[0] {
	case "versionsList":
		if len(parts) != 2 {
			return nil, errors.Errorf("usage: versionsList:{group}.{name}")
		}
		group, name, err := SplitCoordinate(parts[1])
		if err != nil {
			return nil, err
		}
		return &Instruction{Kind: KindVersionsList, Group: group, Name: name}, nil

	case "downloadInfos", "download":
		if len(parts) != 3 {
			return nil, errors.Errorf("usage: %s:{group}.{name}:{version}", parts[0])
		}
		group, name, err := SplitCoordinate(parts[1])
		if err != nil {
			return nil, err
		}
		kind := KindDownloadInfos
		if parts[0] == "download" {
			kind = KindDownload
		}
		return &Instruction{Kind: kind, Group: group, Name: name, Version: parts[2]}, nil

	default:
		return nil, errors.Errorf("unknown instruction: %q", parts[0])
	}
}
