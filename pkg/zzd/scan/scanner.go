// Package scan tokenizes Flood Modeller .zzd diagnostic output into
// discrete records. The format interleaves free-form log text with two
// fixed multi-line block shapes: convergence blocks and coded warning
// blocks. Everything that matches neither shape is skipped.
//
// Sources are read through a byte window (memory-mapped file or
// in-memory buffer), never loaded whole. Scan walks a source
// sequentially; ScanParallel splits it into byte ranges and reconciles
// blocks that straddle range boundaries, producing the exact record
// sequence a sequential scan would.
package scan

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Block shapes are fixed constants of the .zzd format and must keep
// matching deployed files exactly. Headlines carry the model time; the
// completing line carries the payload fields.
var (
	reConvHead = regexp.MustCompile(`(?i)poor model convergence.*?time\s+(\d+\.?\d*)`)
	reConvMax  = regexp.MustCompile(`(?i)max dq=\s*(\S+)\s+at\s+(\S+).*?max dh=\s*(\S+)\s+at\s+(\S+)`)
	reWarnHead = regexp.MustCompile(`(?i)model time\s+(\d+\.?\d*)`)
	reWarnCode = regexp.MustCompile(`(?i)\*\*\*\s+(warning|note|error)\s+(\w+)\s+\*\*\*\s+at label:\s+(\S+)`)
)

// maxBlockBytes bounds the distance between a block's headline and its
// completing line. A headline whose completion has not appeared within
// this many bytes is abandoned as free text. Parallel chunks read this
// far past their range end to finish blocks that straddle the boundary,
// so the bound also fixes the chunk overlap.
const maxBlockBytes = 4096

// maxLineBytes caps a single line. Longer lines are drained and matched
// only against their first maxLineBytes bytes; structured lines in
// deployed files are far below this.
const maxLineBytes = 1 << 20

// Scan walks the whole source in line order and calls emit for every
// matched record, in headline order. Memory stays bounded by the line
// buffer regardless of source size. emit returning false stops the scan
// early; that is not an error.
func Scan(src *Source, emit func(Record) bool) error {
	return scanRange(src, 0, src.Size(), emit)
}

// scanRange scans the byte range [start, end) of src. A record is
// produced here iff its headline starts inside the range; completing
// lines may lie up to maxBlockBytes past end. start must sit on a line
// boundary or the leading partial line is skipped (it belongs to the
// range before it).
func scanRange(src *Source, start, end int64, emit func(Record) bool) error {
	size := src.Size()
	if start < 0 {
		start = 0
	}
	if end > size {
		end = size
	}
	if start >= end {
		return nil
	}

	skipFirst := false
	if start > 0 {
		var b [1]byte
		if _, err := src.ReadAt(b[:], start-1); err != nil {
			return fmt.Errorf("%w: %s: read at %d: %v", ErrUnreadableSource, src.Name(), start-1, err)
		}
		skipFirst = b[0] != '\n'
	}

	lr := newLineReader(src, start)
	st := scanState{end: end, emit: emit}
	for {
		line, off, ok, err := lr.next()
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrUnreadableSource, src.Name(), err)
		}
		if !ok {
			break
		}
		if skipFirst {
			skipFirst = false
			continue
		}
		if !st.line(line, off) {
			break
		}
	}
	st.finish()
	return nil
}

// openBlock is a headline still waiting for its completing line.
type openBlock struct {
	off  int64
	time string
}

// scanState matches block shapes over a stream of lines. Convergence
// and warning blocks are tracked independently: the format allows a
// warning block to complete while a convergence block is still open. A
// completing line pairs with the nearest preceding headline of its
// kind; this keeps pairing decisions local to a bounded byte window,
// which is what lets parallel ranges reproduce the sequential result.
type scanState struct {
	end     int64 // ownership boundary; headlines at or past it are not anchored
	conv    *openBlock
	warn    *openBlock
	held    []Record
	emit    func(Record) bool
	stopped bool
}

// line consumes one line at byte offset off and reports whether the scan
// should continue.
func (s *scanState) line(text []byte, off int64) bool {
	if s.stopped {
		return false
	}

	if s.conv != nil && off-s.conv.off > maxBlockBytes {
		s.conv = nil
		s.flush()
	}
	if s.warn != nil && off-s.warn.off > maxBlockBytes {
		s.warn = nil
		s.flush()
	}
	if off >= s.end && s.conv == nil && s.warn == nil {
		return false
	}

	if s.conv != nil {
		if m := reConvMax.FindSubmatch(text); m != nil {
			s.complete(Record{
				Kind:   KindConvergence,
				Offset: s.conv.off,
				Time:   s.conv.time,
				MaxDQ:  string(m[1]),
				DQNode: string(m[2]),
				MaxDH:  string(m[3]),
				DHNode: string(m[4]),
			})
			s.conv = nil
		} else if m := reConvHead.FindSubmatch(text); m != nil {
			// A newer headline steals the block: a completing line
			// always pairs with the nearest headline above it.
			// Headlines past the ownership boundary only cancel; the
			// next range anchors them itself.
			s.conv = nil
			if off < s.end {
				s.conv = &openBlock{off: off, time: string(m[1])}
			}
			s.flush()
		}
	} else if off < s.end {
		if m := reConvHead.FindSubmatch(text); m != nil {
			s.conv = &openBlock{off: off, time: string(m[1])}
		}
	}

	if s.warn != nil {
		if m := reWarnCode.FindSubmatch(text); m != nil {
			s.complete(Record{
				Kind:   KindWarning,
				Offset: s.warn.off,
				Time:   s.warn.time,
				Class:  strings.ToLower(string(m[1])),
				Code:   string(m[2]),
				Label:  string(m[3]),
			})
			s.warn = nil
		} else if m := reWarnHead.FindSubmatch(text); m != nil {
			s.warn = nil
			if off < s.end {
				s.warn = &openBlock{off: off, time: string(m[1])}
			}
			s.flush()
		}
	} else if off < s.end {
		if m := reWarnHead.FindSubmatch(text); m != nil {
			s.warn = &openBlock{off: off, time: string(m[1])}
		}
	}

	return !s.stopped
}

func (s *scanState) complete(rec Record) {
	s.held = append(s.held, rec)
	s.flush()
}

// flush emits held records in headline order. A record stays held while
// a block with an earlier headline is still open, so emission order
// matches headline order even when blocks interleave.
func (s *scanState) flush() {
	if s.stopped {
		return
	}
	for len(s.held) > 0 {
		min := 0
		for i := 1; i < len(s.held); i++ {
			if s.held[i].Offset < s.held[min].Offset {
				min = i
			}
		}
		barrier := s.held[min].Offset
		if s.conv != nil && s.conv.off < barrier {
			return
		}
		if s.warn != nil && s.warn.off < barrier {
			return
		}
		rec := s.held[min]
		s.held = append(s.held[:min], s.held[min+1:]...)
		if !s.emit(rec) {
			s.stopped = true
			return
		}
	}
}

// finish abandons any still-open blocks and drains held records.
func (s *scanState) finish() {
	s.conv, s.warn = nil, nil
	s.flush()
}

// lineReader yields lines with the byte offset of their first byte.
// Offsets stay exact across \n and \r\n terminators, which parallel
// range ownership depends on.
type lineReader struct {
	r   *bufio.Reader
	off int64
}

func newLineReader(src *Source, start int64) *lineReader {
	sec := io.NewSectionReader(src, start, src.Size()-start)
	return &lineReader{r: bufio.NewReaderSize(sec, maxLineBytes), off: start}
}

// next returns the next line with its terminator trimmed. ok is false at
// the end of the source.
func (lr *lineReader) next() (line []byte, off int64, ok bool, err error) {
	off = lr.off
	line, err = lr.r.ReadSlice('\n')
	n := int64(len(line))
	if err == bufio.ErrBufferFull {
		head := append([]byte(nil), line...)
		for err == bufio.ErrBufferFull {
			var rest []byte
			rest, err = lr.r.ReadSlice('\n')
			n += int64(len(rest))
		}
		line = head
	}
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		return nil, off, false, err
	}
	if n == 0 {
		return nil, off, false, nil
	}
	lr.off += n
	return trimEOL(line), off, true, nil
}

func trimEOL(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}
