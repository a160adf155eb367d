//go:build linux
// +build linux

package stream

import (
	"os"

	"golang.org/x/sys/unix"
)

func init() {
	ReadOptimizations = []Optimization{
		{
			Name: "sequential",
			Action: func(f *os.File, s os.FileInfo) error {
				if !s.Mode().IsRegular() {
					return os.ErrInvalid
				}
				return unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
			},
		},
		{
			Name: "noreuse",
			Action: func(f *os.File, s os.FileInfo) error {
				if !s.Mode().IsRegular() {
					return os.ErrInvalid
				}
				return unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_NOREUSE)
			},
		},
	}

	// chunk files are written once and never read back by this process
	WriteOptimizations = []Optimization{
		{
			Name: "dontneed",
			Action: func(f *os.File, s os.FileInfo) error {
				if !s.Mode().IsRegular() {
					return os.ErrInvalid
				}
				return unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_DONTNEED)
			},
		},
	}
}
