package steps

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

// sampleInvoiceXML is an authorized NF-e distribution envelope with two line
// items and a freight total, matching what SEFAZ hands back to emitters.
const sampleInvoiceXML = `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc versao="4.00" xmlns="http://www.portalfiscal.inf.br/nfe">
  <NFe>
    <infNFe Id="NFe35250312345678000195550010000123451000123456" versao="4.00">
      <ide><nNF>12345</nNF><dhEmi>2025-03-10T09:30:00-03:00</dhEmi></ide>
      <emit><CNPJ>12345678000195</CNPJ><xNome>TechParts Distribuidora Ltda</xNome></emit>
      <det nItem="1"><prod><xProd>Notebook Latitude 5440</xProd><qCom>2.0000</qCom><vUnCom>4500.00</vUnCom><vProd>9000.00</vProd></prod></det>
      <det nItem="2"><prod><xProd>Monitor 24 Pol P2422H</xProd><qCom>3.0000</qCom><vUnCom>900.00</vUnCom><vProd>2700.00</vProd></prod></det>
      <total><ICMSTot><vNF>11850.00</vNF><vFrete>150.00</vFrete></ICMSTot></total>
    </infNFe>
  </NFe>
</nfeProc>`

// plainTextInvoice is a DANFE-style text dump that the XML parser rejects.
const plainTextInvoice = `DANFE - Documento Auxiliar da Nota Fiscal Eletronica
NF 98765 - Fornecedor Exemplo LTDA - CNPJ 98.765.432/0001-10
1x Cadeira de escritorio R$ 650,00`

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{supplier_id}}", t.currentSupplierID.String())
	content = strings.ReplaceAll(content, "{{location_id}}", t.currentLocationID.String())
	content = strings.ReplaceAll(content, "{{model_id}}", t.currentModelID.String())
	content = strings.ReplaceAll(content, "{{asset_id}}", t.currentAssetID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastCreatedID.String())
	content = strings.ReplaceAll(content, "{{nfe_invoice}}", base64.StdEncoding.EncodeToString([]byte(sampleInvoiceXML)))
	content = strings.ReplaceAll(content, "{{plain_text_invoice}}", base64.StdEncoding.EncodeToString([]byte(plainTextInvoice)))

	if strings.Contains(content, "{{extracted_document}}") {
		content = strings.ReplaceAll(content, "{{extracted_document}}", t.extractedDocumentJSON())
	}

	return content
}

// extractedDocumentJSON re-serializes the document field of the last
// response, so plan and commit requests can round-trip extraction output the
// way the wizard client does.
func (t *testContext) extractedDocumentJSON() string {
	if t.response == nil {
		return "{}"
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return "{}"
	}

	doc, ok := body["document"]
	if !ok {
		return "{}"
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastCreatedID = id
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if t.response.status != expected {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expected, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response body is not a JSON object: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(substring string) error {
	if t.response == nil {
		return fmt.Errorf("no response recorded")
	}

	raw, err := json.Marshal(t.response.body)
	if err != nil {
		return err
	}
	if !strings.Contains(string(raw), substring) {
		return fmt.Errorf("response %s does not contain %q", raw, substring)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(path, expected string) error {
	value, err := t.lookupField(path)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	expected = t.replacePlaceholders(expected)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(path string) error {
	_, err := t.lookupField(path)
	return err
}

func (t *testContext) theResponseListShouldHaveItems(path string, expected int) error {
	value, err := t.lookupField(path)
	if err != nil {
		return err
	}

	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list: %v", path, value)
	}
	if len(list) != expected {
		return fmt.Errorf("expected field %q to have %d items, got %d", path, expected, len(list))
	}
	return nil
}

// lookupField walks a dotted path through the response body. Numeric
// segments index into lists, so "assets.0.name" reaches the first asset.
func (t *testContext) lookupField(path string) (any, error) {
	if t.response == nil {
		return nil, fmt.Errorf("no response recorded")
	}

	var current any = t.response.body
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response (missing %q)", path, segment)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil {
				return nil, fmt.Errorf("field %q: %q is not a list index", path, segment)
			}
			if index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field %q: index %d out of range (%d items)", path, index, len(node))
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q: cannot descend into %T at %q", path, current, segment)
		}
	}

	return current, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(expected int, table string) error {
	record, ok := testDB.GetModel(table)
	if !ok {
		return fmt.Errorf("unknown table %q", table)
	}

	var count int64
	if err := t.db.DbConn.Model(record).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d objects in %q, got %d", expected, table, count)
	}
	return nil
}

// theDbShouldContainObjectsInWithTheValues matches rows against a two-column
// field/value table.
func (t *testContext) theDbShouldContainObjectsInWithTheValues(expected int, table string, conditions *godog.Table) error {
	record, ok := testDB.GetModel(table)
	if !ok {
		return fmt.Errorf("unknown table %q", table)
	}

	where := make(map[string]any, len(conditions.Rows))
	for _, row := range conditions.Rows {
		if len(row.Cells) != 2 {
			return fmt.Errorf("expected field/value rows, got %d cells", len(row.Cells))
		}
		where[row.Cells[0].Value] = t.replacePlaceholders(row.Cells[1].Value)
	}

	var count int64
	if err := t.db.DbConn.Model(record).Where(where).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d objects in %q matching %v, got %d", expected, table, where, count)
	}
	return nil
}
