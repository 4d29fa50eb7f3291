package introspect

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/arthur-debert/vardump/pkg/logging"
)

// FuncSource is what a SourceProvider knows about a function's declaration.
type FuncSource struct {
	File       string
	StartLine  int
	EndLine    int
	ParamNames []string
	// Body holds the declaration's lines strictly between the signature
	// line and the closing line, each with its trailing newline.
	Body string
}

// SourceProvider locates the source of a function. ok is false when the
// source is unavailable, which is never an error.
type SourceProvider interface {
	Source(fn reflect.Value) (src FuncSource, ok bool)
}

// FileSourceProvider reads function sources from the files recorded in the
// binary's line tables. Parsed files are cached; it is safe for concurrent use.
type FileSourceProvider struct {
	ReadFile func(name string) ([]byte, error)

	mu    sync.Mutex
	files map[string]*parsedFile
}

type parsedFile struct {
	fset  *token.FileSet
	file  *ast.File
	lines []string
}

// NewFileSourceProvider returns a provider reading from the local filesystem.
func NewFileSourceProvider() *FileSourceProvider {
	return &FileSourceProvider{ReadFile: os.ReadFile}
}

// Source implements SourceProvider.
func (p *FileSourceProvider) Source(fn reflect.Value) (FuncSource, bool) {
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return FuncSource{}, false
	}
	pc := fn.Pointer()
	rf := runtime.FuncForPC(pc)
	if rf == nil {
		return FuncSource{}, false
	}
	file, line := rf.FileLine(rf.Entry())

	pf := p.parse(file)
	if pf == nil {
		return FuncSource{}, false
	}

	ftype, body := findFunc(pf, line)
	if ftype == nil {
		return FuncSource{}, false
	}

	src := FuncSource{
		File:       file,
		StartLine:  pf.fset.Position(ftype.Pos()).Line,
		EndLine:    pf.fset.Position(body.End()).Line,
		ParamNames: paramNames(ftype),
	}
	if src.StartLine < src.EndLine-1 && src.EndLine-1 <= len(pf.lines) {
		src.Body = strings.Join(pf.lines[src.StartLine:src.EndLine-1], "")
	}
	return src, true
}

func (p *FileSourceProvider) parse(name string) *parsedFile {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pf, ok := p.files[name]; ok {
		return pf
	}
	if p.files == nil {
		p.files = make(map[string]*parsedFile)
	}

	logger := logging.GetLogger("introspect.source")
	readFile := p.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	data, err := readFile(name)
	if err != nil {
		logger.Debug().Err(err).Str("file", name).Msg("Function source unavailable")
		p.files[name] = nil
		return nil
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, name, data, parser.SkipObjectResolution)
	if err != nil {
		logger.Debug().Err(err).Str("file", name).Msg("Function source does not parse")
		p.files[name] = nil
		return nil
	}

	pf := &parsedFile{
		fset:  fset,
		file:  file,
		lines: strings.SplitAfter(string(data), "\n"),
	}
	p.files[name] = pf
	return pf
}

// findFunc returns the first function declaration or literal starting on line.
func findFunc(pf *parsedFile, line int) (*ast.FuncType, *ast.BlockStmt) {
	var (
		ftype *ast.FuncType
		body  *ast.BlockStmt
	)
	ast.Inspect(pf.file, func(n ast.Node) bool {
		if ftype != nil || n == nil {
			return false
		}
		switch fn := n.(type) {
		case *ast.FuncDecl:
			if fn.Body != nil && pf.fset.Position(fn.Pos()).Line == line {
				ftype, body = fn.Type, fn.Body
				return false
			}
		case *ast.FuncLit:
			if pf.fset.Position(fn.Pos()).Line == line {
				ftype, body = fn.Type, fn.Body
				return false
			}
		}
		return true
	})
	return ftype, body
}

func paramNames(ftype *ast.FuncType) []string {
	var names []string
	if ftype.Params == nil {
		return names
	}
	for _, field := range ftype.Params.List {
		if len(field.Names) == 0 {
			names = append(names, "_")
			continue
		}
		for _, name := range field.Names {
			names = append(names, name.Name)
		}
	}
	return names
}
