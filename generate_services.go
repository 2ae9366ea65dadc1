package main

import (
	"github.com/go-cart-ecommerce/service-ts-gen/internal/codemodel"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/config"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/diag"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/document"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/naming"
)

// defaultTag groups operations that declare no tags.
const defaultTag = "default"

// ServiceFiles maps a group key (a path or a tag) to its file, in the order
// the keys were first seen.
type ServiceFiles struct {
	keys  []string
	files map[string]*codemodel.File
}

func newServiceFiles() *ServiceFiles {
	return &ServiceFiles{files: make(map[string]*codemodel.File)}
}

func (s *ServiceFiles) Keys() []string {
	return s.keys
}

func (s *ServiceFiles) Get(key string) (*codemodel.File, bool) {
	f, ok := s.files[key]
	return f, ok
}

func (s *ServiceFiles) Len() int {
	return len(s.keys)
}

// Files returns one file per output name. When two keys produced files with
// the same name, the later file takes the earlier one's place.
func (s *ServiceFiles) Files() []*codemodel.File {
	var out []*codemodel.File
	position := make(map[string]int)
	for _, key := range s.keys {
		f := s.files[key]
		if i, ok := position[f.Name]; ok {
			out[i] = f
			continue
		}
		position[f.Name] = len(out)
		out = append(out, f)
	}
	return out
}

func (s *ServiceFiles) add(key string, f *codemodel.File) {
	s.keys = append(s.keys, key)
	s.files[key] = f
}

// generateServices walks every operation of doc and adds a service method
// for it to the class of its group's file. Files are created lazily, named
// after the first tag of the first operation seen for the group.
func generateServices(doc *document.Document, groupBy string, env codemodel.Env) *ServiceFiles {
	if env.Reporter == nil {
		env.Reporter = diag.Nop{}
	}

	services := newServiceFiles()
	owner := make(map[string]string)

	for _, path := range doc.Paths() {
		for _, method := range doc.Methods(path) {
			op, ok := doc.Operation(path, method, env.Reporter)
			if !ok {
				continue
			}

			tag := defaultTag
			if len(op.Tags) > 0 && op.Tags[0] != "" {
				tag = op.Tags[0]
			} else {
				subject := op.OperationID
				if subject == "" {
					subject = method + " " + path
				}
				diag.Warnf(env.Reporter, diag.CodeMissingTag, subject, "operation has no tags, grouping under %q", defaultTag)
			}

			key := path
			if groupBy == config.GroupByTag {
				key = tag
			}

			file, ok := services.Get(key)
			if !ok {
				fileName := naming.FileName(tag)
				if prev, taken := owner[fileName]; taken {
					diag.Warnf(env.Reporter, diag.CodeDuplicateFile, key,
						"file %q was already generated for %q and will be replaced", fileName, prev)
				}
				owner[fileName] = key

				file = codemodel.NewFile(fileName, env)
				file.CreateClass(naming.ClassName(fileName))
				services.add(key, file)
			}

			file.Classes[0].AddServiceMethod(op)
		}
	}

	return services
}
