package indexer

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/BiradarSiddhant02/pioneer/pkg/extract"
	"github.com/BiradarSiddhant02/pioneer/pkg/sigparse"
)

// extractFile parses one file and flattens its functions, calls, and
// variables into records. C top-level functions are qualified as
// "filename::func" (spec §6.3, S1/S2/S3/S4) since the C adapter has no
// file context; the prefix is the file's base name including its
// extension, e.g. "a.c::a".
//
// Functions sharing a qualified name within this file but differing in
// parameter types are overloads (spec §6.3, §9): each gets a
// sigparse.Disambiguate suffix before any call/variable record is built,
// so every call site is attributed to the correct overload by the
// function's final index rather than by its (possibly shared) name.
// Cross-file collisions are resolved later, once every file has been
// parsed, by disambiguateAcrossFiles.
func extractFile(file DiscoveredFile, index int) fileResult {
	res := fileResult{index: index, path: file.Path}

	source, err := os.ReadFile(file.Path)
	if err != nil {
		res.parseErr = err
		return res
	}

	adapter := extract.New(file.Lang)
	if !adapter.Parse(source) {
		res.parseErr = errParse
		return res
	}
	if closer, ok := adapter.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	filename := filepath.Base(file.Path)
	fns := adapter.ExtractFunctions()

	qualifiedNames := make([]string, len(fns))
	for i, fn := range fns {
		qualified := fn.QualifiedName
		if file.Lang == extract.C && fn.ContainingClass == "" {
			qualified = filename + "::" + fn.SimpleName
		}
		qualifiedNames[i] = qualified
	}
	disambiguateWithinFile(fns, qualifiedNames)

	res.functions = make([]FunctionRecord, len(fns))
	for i, fn := range fns {
		res.functions[i] = FunctionRecord{
			QualifiedName: qualifiedNames[i],
			FilePath:      file.Path,
			ParamTypes:    fn.ParamTypes,
			StartLine:     fn.StartLine,
			EndLine:       fn.EndLine,
		}
	}

	for i, fn := range fns {
		for _, call := range adapter.ExtractCalls(fn) {
			res.calls = append(res.calls, CallRecord{
				CallerName:  qualifiedNames[i],
				CallerIndex: i,
				CalleeName:  call.Name,
			})
		}
		for _, v := range adapter.ExtractVariables(fn) {
			res.variables = append(res.variables, VariableRecord{
				QualifiedName:    v.QualifiedName,
				ContainingFunc:   qualifiedNames[i],
				FuncIndex:        i,
				ValueSource:      v.ValueSource,
				FromFunctionCall: v.FromFunctionCall,
			})
		}
	}
	return res
}

// disambiguateWithinFile appends a sigparse suffix (in place, into
// qualifiedNames) to every function in a same-name group whose parameter
// types aren't all identical. A group whose members all share one
// signature is a true duplicate (e.g. a forward declaration), not an
// overload, and is left alone so it still collapses to one symbol (spec
// §9's last-write-wins/first-writer-wins policies apply to those as
// before).
func disambiguateWithinFile(fns []extract.FunctionDef, qualifiedNames []string) {
	groups := make(map[string][]int)
	for i, name := range qualifiedNames {
		groups[name] = append(groups[name], i)
	}
	for _, indices := range groups {
		if len(indices) < 2 {
			continue
		}
		if !paramsDiffer(fns, indices) {
			continue
		}
		for _, i := range indices {
			qualifiedNames[i] = sigparse.Disambiguate(qualifiedNames[i], fns[i].ParamTypes)
		}
	}
}

// paramsDiffer reports whether the functions at indices don't all share
// the same normalized parameter-type signature.
func paramsDiffer(fns []extract.FunctionDef, indices []int) bool {
	first := sigparse.DisambiguationSuffix(fns[indices[0]].ParamTypes)
	for _, i := range indices[1:] {
		if sigparse.DisambiguationSuffix(fns[i].ParamTypes) != first {
			return true
		}
	}
	return false
}

// extractFilesParallel runs Phase 2 (spec §4.C): files are partitioned
// across a worker pool and each worker parses its files independently.
// Results are collected into a slice addressed by discovery index so
// Phase 3 can batch in deterministic file order regardless of which
// worker finished first.
func extractFilesParallel(ctx context.Context, files []DiscoveredFile, workers int, onProgress ProgressCallback) ([]fileResult, int) {
	results := make([]fileResult, len(files))
	if len(files) == 0 {
		return results, 0
	}
	if workers <= 0 {
		workers = 4
	}
	if len(files) < 10 {
		workers = 1
	}

	jobs := make(chan int, len(files))
	var wg sync.WaitGroup
	var errCount int32
	var done int64
	total := int64(len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				r := extractFile(files[i], i)
				if r.parseErr != nil {
					atomic.AddInt32(&errCount, 1)
				}
				results[i] = r
				current := atomic.AddInt64(&done, 1)
				if onProgress != nil {
					onProgress(current, total, "parsing")
				}
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	disambiguateAcrossFiles(results)

	return results, int(errCount)
}

// disambiguateAcrossFiles resolves overload-disambiguation collisions
// left after per-file extraction: two different files defining a function
// under the identical qualified name (spec §6.3, §9 — "more than one
// function shares a qualified name in the same repository"). Functions
// already suffixed by disambiguateWithinFile are effectively unique
// strings already and simply don't collide again here. CallerIndex/
// FuncIndex let every affected call/variable record in the owning file
// pick up the new name without string matching against what may, before
// this pass, be a name shared by several functions across files.
func disambiguateAcrossFiles(results []fileResult) {
	type occurrence struct {
		file, fn int
	}
	groups := make(map[string][]occurrence)
	for fi := range results {
		if results[fi].parseErr != nil {
			continue
		}
		for ni, fn := range results[fi].functions {
			groups[fn.QualifiedName] = append(groups[fn.QualifiedName], occurrence{fi, ni})
		}
	}
	for _, occs := range groups {
		if len(occs) < 2 {
			continue
		}
		first := occs[0]
		firstSig := sigparse.DisambiguationSuffix(results[first.file].functions[first.fn].ParamTypes)
		differ := false
		for _, o := range occs[1:] {
			if sigparse.DisambiguationSuffix(results[o.file].functions[o.fn].ParamTypes) != firstSig {
				differ = true
				break
			}
		}
		if !differ {
			continue
		}
		for _, o := range occs {
			fn := &results[o.file].functions[o.fn]
			renamed := sigparse.Disambiguate(fn.QualifiedName, fn.ParamTypes)
			oldName := fn.QualifiedName
			fn.QualifiedName = renamed
			for ci := range results[o.file].calls {
				if results[o.file].calls[ci].CallerIndex == o.fn {
					results[o.file].calls[ci].CallerName = renamed
				}
			}
			for vi := range results[o.file].variables {
				if results[o.file].variables[vi].FuncIndex == o.fn && results[o.file].variables[vi].ContainingFunc == oldName {
					results[o.file].variables[vi].ContainingFunc = renamed
				}
			}
		}
	}
}
