package vollmacht

import (
	"testing"
)

// testFormData returns a fully populated form.
func testFormData() FormData {
	return FormData{
		GrantorName:      "Müller",
		GrantorFirstName: "Anna",
		GrantorBirthDate: "01.01.1990",
		GrantorAddress:   "Musterstr. 1, Berlin",
		GranteeName:      "Schmidt",
		GranteeFirstName: "Jan",
		GranteeBirthDate: "02.02.1985",
		GranteeAddress:   "Beispielweg 2, Berlin",
		City:             "Berlin",
		Date:             "15.03.2024",
	}
}

func TestBuildLayout_BlockOrder(t *testing.T) {
	blocks := BuildLayout(testFormData(), nil, nil, nil)

	wantTypes := []string{
		"title", "paragraph", "spacer", "paragraph", "paragraph", "table",
		"spacer", "paragraph", "paragraph", "table", "spacer", "paragraph",
		"paragraph", "spacer", "paragraph", "spacer", "keeptogether",
	}
	if len(blocks) != len(wantTypes) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(wantTypes))
	}
	for i, want := range wantTypes {
		var got string
		switch blocks[i].(type) {
		case TitleBlock:
			got = "title"
		case ParagraphBlock:
			got = "paragraph"
		case SpacerBlock:
			got = "spacer"
		case TableBlock:
			got = "table"
		case ImageBlock:
			got = "image"
		case KeepTogetherBlock:
			got = "keeptogether"
		}
		if got != want {
			t.Errorf("block[%d] = %s, want %s", i, got, want)
		}
	}
}

func TestBuildLayout_GermanFallbacks(t *testing.T) {
	blocks := BuildLayout(testFormData(), nil, nil, nil)

	title, ok := blocks[0].(TitleBlock)
	if !ok || title.Text != "Vollmacht" {
		t.Errorf("title = %+v, want Vollmacht", blocks[0])
	}

	dateLine, ok := blocks[14].(ParagraphBlock)
	if !ok {
		t.Fatalf("block[14] is %T, want ParagraphBlock", blocks[14])
	}
	if dateLine.Text != "Berlin, den 15.03.2024" {
		t.Errorf("date line = %q, want %q", dateLine.Text, "Berlin, den 15.03.2024")
	}
	if dateLine.Markup {
		t.Error("date line must never carry markup: it contains user data")
	}
}

func TestBuildLayout_PartyTables(t *testing.T) {
	blocks := BuildLayout(testFormData(), nil, nil, nil)

	grantor, ok := blocks[5].(TableBlock)
	if !ok {
		t.Fatalf("block[5] is %T, want TableBlock", blocks[5])
	}
	grantee, ok := blocks[9].(TableBlock)
	if !ok {
		t.Fatalf("block[9] is %T, want TableBlock", blocks[9])
	}

	for _, tbl := range []TableBlock{grantor, grantee} {
		if len(tbl.ColWidths) != 2 || tbl.ColWidths[0] != 100 || tbl.ColWidths[1] != 350 {
			t.Errorf("column widths = %v, want [100 350]", tbl.ColWidths)
		}
		if len(tbl.Rows) != 4 {
			t.Fatalf("got %d rows, want 4", len(tbl.Rows))
		}
	}

	wantGrantor := [][]string{
		{"Name:", "Müller"},
		{"Vorname:", "Anna"},
		{"Geburtsdatum:", "01.01.1990"},
		{"Anschrift:", "Musterstr. 1, Berlin"},
	}
	for i, want := range wantGrantor {
		if grantor.Rows[i][0] != want[0] || grantor.Rows[i][1] != want[1] {
			t.Errorf("grantor row %d = %v, want %v", i, grantor.Rows[i], want)
		}
	}

	if grantee.Rows[0][1] != "Schmidt" || grantee.Rows[3][1] != "Beispielweg 2, Berlin" {
		t.Errorf("grantee values = %v", grantee.Rows)
	}
}

func TestBuildLayout_EmptyFieldsRenderEmpty(t *testing.T) {
	blocks := BuildLayout(FormData{}, nil, nil, nil)

	grantor := blocks[5].(TableBlock)
	for i, row := range grantor.Rows {
		if row[1] != "" {
			t.Errorf("row %d value = %q, want empty", i, row[1])
		}
		if row[0] == "" {
			t.Errorf("row %d label empty", i)
		}
	}

	dateLine := blocks[14].(ParagraphBlock)
	if dateLine.Text != ", den " {
		t.Errorf("empty date line = %q, want %q", dateLine.Text, ", den ")
	}
}

func TestBuildLayout_SignatureGroup(t *testing.T) {
	t.Run("without signature", func(t *testing.T) {
		blocks := BuildLayout(testFormData(), nil, nil, nil)

		group, ok := blocks[len(blocks)-1].(KeepTogetherBlock)
		if !ok {
			t.Fatalf("last block is %T, want KeepTogetherBlock", blocks[len(blocks)-1])
		}
		if len(group.Blocks) != 2 {
			t.Fatalf("got %d group blocks, want 2 (rule + caption)", len(group.Blocks))
		}
		rule := group.Blocks[0].(ParagraphBlock)
		if rule.Text != "_________________________" {
			t.Errorf("rule line = %q", rule.Text)
		}
		caption := group.Blocks[1].(ParagraphBlock)
		if caption.Text != "Unterschrift des Vollmachtgebers" {
			t.Errorf("caption = %q", caption.Text)
		}
	})

	t.Run("with signature", func(t *testing.T) {
		sig := &ImageBlock{Data: []byte("img"), Format: "png", Width: 180, Height: 54}
		blocks := BuildLayout(testFormData(), sig, nil, nil)

		group := blocks[len(blocks)-1].(KeepTogetherBlock)
		if len(group.Blocks) != 4 {
			t.Fatalf("got %d group blocks, want 4 (image + spacer + rule + caption)", len(group.Blocks))
		}
		img, ok := group.Blocks[0].(ImageBlock)
		if !ok {
			t.Fatalf("group[0] is %T, want ImageBlock", group.Blocks[0])
		}
		if img.Width != 180 || img.Height != 54 {
			t.Errorf("image size = %vx%v, want 180x54", img.Width, img.Height)
		}
		spacer, ok := group.Blocks[1].(SpacerBlock)
		if !ok || spacer.Height != -12 {
			t.Errorf("group[1] = %+v, want spacer of -12", group.Blocks[1])
		}
	})
}

func TestBuildLayout_Localized(t *testing.T) {
	table, err := Language("en")
	if err != nil {
		t.Fatal(err)
	}

	blocks := BuildLayout(testFormData(), nil, table, nil)

	if title := blocks[0].(TitleBlock); title.Text != "Power of Attorney" {
		t.Errorf("title = %q, want Power of Attorney", title.Text)
	}
	grantor := blocks[5].(TableBlock)
	if grantor.Rows[1][0] != "First name:" {
		t.Errorf("label = %q, want First name:", grantor.Rows[1][0])
	}
	dateLine := blocks[14].(ParagraphBlock)
	if dateLine.Text != "Berlin, 15.03.2024" {
		t.Errorf("date line = %q, want %q", dateLine.Text, "Berlin, 15.03.2024")
	}
}

func TestBuildLayout_TitleKeyOption(t *testing.T) {
	table := Table{"custom.title": "Spezialvollmacht"}
	opts := &RenderOptions{TitleKey: "custom.title"}

	blocks := BuildLayout(testFormData(), nil, table, opts)

	if title := blocks[0].(TitleBlock); title.Text != "Spezialvollmacht" {
		t.Errorf("title = %q, want Spezialvollmacht", title.Text)
	}
}

func TestBuildLayout_Remarks(t *testing.T) {
	data := testFormData()
	data.Remarks = "Gilt nur bis **31.12.2024**."

	blocks := BuildLayout(data, nil, nil, nil)

	// Two extra blocks: spacer + remarks paragraph.
	if len(blocks) != 19 {
		t.Fatalf("got %d blocks, want 19", len(blocks))
	}
	remarks, ok := blocks[14].(ParagraphBlock)
	if !ok {
		t.Fatalf("block[14] is %T, want ParagraphBlock", blocks[14])
	}
	if !remarks.Markup {
		t.Error("remarks from Markdown should carry markup")
	}
	if remarks.Text != "Gilt nur bis <strong>31.12.2024</strong>." {
		t.Errorf("remarks = %q", remarks.Text)
	}
}

func TestBuildLayout_NeverMutatesInput(t *testing.T) {
	data := testFormData()
	sig := &ImageBlock{Data: []byte("img"), Format: "png", Width: 180, Height: 54}

	BuildLayout(data, sig, nil, nil)

	if data != testFormData() {
		t.Error("FormData mutated")
	}
	if sig.Width != 180 || sig.Height != 54 || string(sig.Data) != "img" {
		t.Error("signature block mutated")
	}
}
