package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-cart-ecommerce/service-ts-gen/internal/codemodel"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/config"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/diag"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/document"
)

func parseDoc(t *testing.T, spec string) *document.Document {
	t.Helper()
	doc, err := document.Parse([]byte(spec), "test.yaml")
	require.NoError(t, err)
	return doc
}

func TestSingleOperationRoundTrip(t *testing.T) {
	spec := `
swagger: "2.0"
info:
  title: Test API
  version: 1.0.0
paths:
  /widgets/{id}:
    get:
      operationId: getWidgetUsingGET
      summary: Get widget
      tags: [Widget]
      responses:
        '200':
          description: ok
          schema:
            $ref: '#/definitions/Widget'
definitions:
  Widget:
    type: object
`
	bag := diag.NewBag()
	services := generateServices(parseDoc(t, spec), config.GroupByPath, codemodel.Env{Reporter: bag})

	require.Equal(t, 1, services.Len())
	file, ok := services.Get("/widgets/{id}")
	require.True(t, ok)
	assert.Equal(t, "widget", file.Name)
	require.Len(t, file.Classes, 1)
	assert.Equal(t, "Widget", file.Classes[0].Name)
	require.Len(t, file.Classes[0].Methods, 1)

	method := file.Classes[0].Methods[0]
	assert.Equal(t, "getWidget", method.Name)
	assert.Equal(t, "Widget", method.ReturnType)
	assert.Empty(t, method.Arguments)
	assert.Equal(t, 0, bag.Len())

	expected := `// Auto-generated TypeScript service
// Do not modify manually.

import { Widget } from '@private/repository';

export class Widget {
  getWidget(): Widget {
    return ;
  }
}
`
	assert.Equal(t, expected, file.Render())
}

const petStoreSpec = `
swagger: "2.0"
info:
  title: Pet store
  version: 1.0.0
paths:
  /pets:
    get:
      operationId: listPetsUsingGET
      tags: [pet-controller]
      parameters:
        - name: owner
          in: query
          type: string
      responses:
        '200':
          description: ok
          schema:
            type: array
            items:
              $ref: '#/definitions/Pet'
    post:
      operationId: createPetUsingPOST
      tags: [pet-controller]
      parameters:
        - name: body
          in: body
          required: true
          schema:
            $ref: '#/definitions/Owner'
      responses:
        '200':
          description: ok
          schema:
            $ref: '#/definitions/Pet'
  /pets/{id}:
    delete:
      operationId: deletePetUsingDELETE
      tags: [pet-controller]
      parameters:
        - name: id
          in: path
          required: true
          type: integer
      responses:
        '204':
          description: gone
  /health:
    get:
      operationId: health
      summary: healthCheck
      responses:
        '200':
          description: ok
          schema:
            type: object
            additionalProperties:
              type: string
definitions:
  Pet:
    type: object
  Owner:
    type: object
`

func TestGroupByTag(t *testing.T) {
	bag := diag.NewBag()
	services := generateServices(parseDoc(t, petStoreSpec), config.GroupByTag, codemodel.Env{Reporter: bag})

	assert.Equal(t, []string{"pet-controller", "default"}, services.Keys())

	pets, ok := services.Get("pet-controller")
	require.True(t, ok)
	assert.Equal(t, "petController", pets.Name)
	assert.Equal(t, "PetController", pets.Classes[0].Name)

	var names []string
	for _, m := range pets.Classes[0].Methods {
		names = append(names, m.Name+"(): "+m.ReturnType)
	}
	assert.Equal(t, []string{"listPets(): Pet[]", "createPet(): Pet", "deletePet(): void"}, names)
	assert.Equal(t, []string{"import { Pet, Owner } from '@private/repository';"}, pets.Imports.Render())

	health, ok := services.Get("default")
	require.True(t, ok)
	assert.Equal(t, "default", health.Name)
	assert.Equal(t, "healthCheck", health.Classes[0].Methods[0].Name)
	assert.Equal(t, "string", health.Classes[0].Methods[0].ReturnType)

	assert.True(t, bag.HasCode(diag.CodeMissingTag))
	assert.True(t, bag.HasCode(diag.CodeBadOperationID))
	assert.Equal(t, 0, bag.Count(diag.SevError))
}

func TestGroupByPath(t *testing.T) {
	bag := diag.NewBag()
	services := generateServices(parseDoc(t, petStoreSpec), config.GroupByPath, codemodel.Env{Reporter: bag})

	assert.Equal(t, []string{"/pets", "/pets/{id}", "/health"}, services.Keys())

	pets, _ := services.Get("/pets")
	assert.Len(t, pets.Classes[0].Methods, 2)
	byID, _ := services.Get("/pets/{id}")
	assert.Len(t, byID.Classes[0].Methods, 1)
	assert.Empty(t, byID.Imports.Render())

	// /pets and /pets/{id} share a tag, so only the later file survives
	assert.True(t, bag.HasCode(diag.CodeDuplicateFile))
	files := services.Files()
	require.Len(t, files, 2)
	assert.Same(t, byID, files[0])
	assert.Equal(t, "default", files[1].Name)
}

func TestOptionalArgumentsRendering(t *testing.T) {
	spec := `
swagger: "2.0"
info:
  title: Search
  version: 1.0.0
paths:
  /search:
    get:
      operationId: searchUsingGET
      tags: [search]
      parameters:
        - name: page
          in: query
          type: integer
          default: 0
        - name: q
          in: query
          required: true
          type: string
        - name: sort
          in: query
          type: array
          items:
            type: string
      responses:
        '200':
          description: ok
          schema:
            type: array
            items:
              type: string
`
	services := generateServices(parseDoc(t, spec), config.GroupByTag, codemodel.Env{OptionalArguments: true})
	file, _ := services.Get("search")

	assert.Contains(t, file.Render(), "search(q: string, page: number = 0, sort?: string[]): string[] {")
}

func TestGenerate(t *testing.T) {
	cfg := config.Default()
	cfg.Output = filepath.Join(t.TempDir(), "services")
	cfg.GroupBy = config.GroupByTag
	cfg.Extension = ".service.ts"

	var out bytes.Buffer
	err := generate(context.Background(), cfg, logr.Discard(), strings.NewReader(petStoreSpec), &out)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.Output, "petController.service.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "export class PetController {")
	assert.Contains(t, string(data), "  createPet(body: Owner): Pet {")
	assert.FileExists(t, filepath.Join(cfg.Output, "default.service.ts"))

	assert.Contains(t, out.String(), "2 service file(s)")
	assert.Contains(t, out.String(), "Warnings:")
}

func TestGenerateLoadFailure(t *testing.T) {
	cfg := config.Default()
	cfg.Output = t.TempDir()

	err := generate(context.Background(), cfg, logr.Discard(), strings.NewReader("openapi: 3.0.0"), &bytes.Buffer{})
	var loadErr document.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, document.CodeVersionError, loadErr.Code)
}
