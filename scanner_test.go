package tailio_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/JackKCWong/tailio"
	. "github.com/onsi/gomega"
)

func scanAll(s *tailio.Scanner) []tailio.Line {
	var lines []tailio.Line
	for s.Scan() {
		l := s.Line()
		l.Raw = append([]byte(nil), l.Raw...)
		lines = append(lines, l)
	}

	return lines
}

func TestSmokeScan(t *testing.T) {
	g := NewGomegaWithT(t)

	scanner := tailio.NewScanner(strings.NewReader("hi\nworld\nbye\nsu"), make([]byte, 6))
	lines := scanAll(scanner)

	g.Expect(scanner.Err()).Should(Equal(io.EOF))
	g.Expect(lines).Should(Equal([]tailio.Line{
		{No: 1, LineStart: 0, LineEnding: 2, Raw: []byte("hi\n")},
		{No: 2, LineStart: 3, LineEnding: 8, Raw: []byte("world\n")},
		{No: 3, LineStart: 9, LineEnding: 12, Raw: []byte("bye\n")},
		{No: 4, LineStart: 13, LineEnding: 14, Raw: []byte("su")},
	}))
	g.Expect(lines[2].Terminated()).Should(BeTrue())
	g.Expect(lines[3].Terminated()).Should(BeFalse())
}

func TestScanEmpty(t *testing.T) {
	g := NewGomegaWithT(t)

	scanner := tailio.NewScanner(strings.NewReader(""), nil)
	g.Expect(scanner.Scan()).Should(BeFalse())
	g.Expect(scanner.Err()).Should(Equal(io.EOF))
}

func TestScanBlankLines(t *testing.T) {
	g := NewGomegaWithT(t)

	scanner := tailio.NewScanner(iotest.OneByteReader(strings.NewReader("\n\na\n")), make([]byte, 2))
	lines := scanAll(scanner)

	g.Expect(lines).Should(HaveLen(3))
	g.Expect(lines[0].Raw).Should(BeEquivalentTo("\n"))
	g.Expect(lines[1].Raw).Should(BeEquivalentTo("\n"))
	g.Expect(lines[2].Raw).Should(BeEquivalentTo("a\n"))
	g.Expect(lines[2].LineStart).Should(BeEquivalentTo(2))
}

func TestScanGrowsBuffer(t *testing.T) {
	g := NewGomegaWithT(t)

	long := strings.Repeat("x", 100) + "\n"
	scanner := tailio.NewScanner(strings.NewReader("a\n"+long+"b"), make([]byte, 4))
	lines := scanAll(scanner)

	g.Expect(scanner.Err()).Should(Equal(io.EOF))
	g.Expect(lines).Should(HaveLen(3))
	g.Expect(lines[1].Raw).Should(BeEquivalentTo(long))
	g.Expect(lines[1].LineStart).Should(BeEquivalentTo(2))
	g.Expect(lines[1].LineEnding).Should(BeEquivalentTo(102))
	g.Expect(lines[2].Raw).Should(BeEquivalentTo("b"))
}

func TestScanLineTooLong(t *testing.T) {
	g := NewGomegaWithT(t)

	scanner := tailio.NewScanner(strings.NewReader("bye\nsuper looooooooooong line\n"),
		make([]byte, 6), tailio.WithMaxLineLen(6))

	g.Expect(scanner.Scan()).Should(BeTrue())
	g.Expect(scanner.Line().Raw).Should(BeEquivalentTo("bye\n"))
	g.Expect(scanner.Scan()).Should(BeFalse())
	g.Expect(scanner.Err()).Should(Equal(tailio.ErrLineTooLong))
}

func TestScanWithStartPos(t *testing.T) {
	g := NewGomegaWithT(t)

	scanner := tailio.NewScanner(strings.NewReader("c\nd\n"), nil, tailio.WithStartPos(4, 3))
	lines := scanAll(scanner)

	g.Expect(lines).Should(HaveLen(2))
	g.Expect(lines[0].No).Should(BeEquivalentTo(3))
	g.Expect(lines[0].LineStart).Should(BeEquivalentTo(4))
	g.Expect(lines[1].No).Should(BeEquivalentTo(4))
	g.Expect(lines[1].LineEnding).Should(BeEquivalentTo(7))
}

func TestSkipLinesThenWriteTo(t *testing.T) {
	g := NewGomegaWithT(t)

	doc := "one\n" + strings.Repeat("long", 10) + "\nthree\nfour"
	for _, bufSize := range []int{1, 2, 3, 5, 8, 64} {
		scanner := tailio.NewScanner(iotest.HalfReader(strings.NewReader(doc)), make([]byte, bufSize))

		skipped, err := scanner.SkipLines(2)
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(skipped).Should(BeEquivalentTo(2))
		g.Expect(scanner.Line().No).Should(BeEquivalentTo(2))
		g.Expect(scanner.Line().LineStart).Should(BeEquivalentTo(4))
		g.Expect(scanner.Line().LineEnding).Should(BeEquivalentTo(44))

		var out bytes.Buffer
		n, err := scanner.WriteTo(&out)
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(out.String()).Should(Equal("three\nfour"), "buf %d", bufSize)
		g.Expect(n).Should(BeEquivalentTo(len("three\nfour")))
		g.Expect(scanner.Scan()).Should(BeFalse())
	}
}

func TestSkipLinesPastEnd(t *testing.T) {
	g := NewGomegaWithT(t)

	scanner := tailio.NewScanner(strings.NewReader("a\nb"), make([]byte, 2))
	skipped, err := scanner.SkipLines(5)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(skipped).Should(BeEquivalentTo(2))

	var out bytes.Buffer
	_, err = scanner.WriteTo(&out)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(out.Len()).Should(BeZero())
}

func TestScanReadError(t *testing.T) {
	g := NewGomegaWithT(t)

	boom := io.ErrUnexpectedEOF
	scanner := tailio.NewScanner(iotest.ErrReader(boom), nil)
	g.Expect(scanner.Scan()).Should(BeFalse())
	g.Expect(scanner.Err()).Should(Equal(boom))

	_, err := scanner.WriteTo(io.Discard)
	g.Expect(err).Should(Equal(boom))
}
