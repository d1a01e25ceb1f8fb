package pptx

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/Srinivasa-Bhargava-deel/slidesmith/pkg/deck"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// esc escapes text for XML element content and attribute values.
var esc = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
).Replace

// contentTypesXML declares every part type in the package.
func contentTypesXML(slides int) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` + "\n")
	buf.WriteString(`  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` + "\n")
	buf.WriteString(`  <Default Extension="xml" ContentType="application/xml"/>` + "\n")
	buf.WriteString(`  <Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>` + "\n")
	buf.WriteString(`  <Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>` + "\n")
	buf.WriteString(`  <Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>` + "\n")
	buf.WriteString(`  <Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>` + "\n")
	for i := 1; i <= slides; i++ {
		fmt.Fprintf(&buf, `  <Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`+"\n", i)
	}
	buf.WriteString(`  <Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` + "\n")
	buf.WriteString(`  <Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` + "\n")
	buf.WriteString(`</Types>` + "\n")
	return buf.Bytes()
}

const rootRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>
</Relationships>
`

// corePropsXML carries the deck metadata. The modified timestamp mirrors
// created so that identical inputs produce identical packages.
func corePropsXML(d deck.Deck, author string, created time.Time) []byte {
	stamp := created.UTC().Format(time.RFC3339)

	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` + "\n")
	fmt.Fprintf(&buf, "  <dc:title>%s</dc:title>\n", esc(d.DisplayTitle()))
	fmt.Fprintf(&buf, "  <dc:creator>%s</dc:creator>\n", esc(author))
	if d.Meta.Subject != "" {
		fmt.Fprintf(&buf, "  <dc:subject>%s</dc:subject>\n", esc(d.Meta.Subject))
	}
	fmt.Fprintf(&buf, "  <cp:lastModifiedBy>%s</cp:lastModifiedBy>\n", esc(author))
	fmt.Fprintf(&buf, `  <dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`+"\n", stamp)
	fmt.Fprintf(&buf, `  <dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`+"\n", stamp)
	buf.WriteString(`</cp:coreProperties>` + "\n")
	return buf.Bytes()
}

func appPropsXML(slides int) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">` + "\n")
	buf.WriteString("  <Application>slidesmith</Application>\n")
	fmt.Fprintf(&buf, "  <Slides>%d</Slides>\n", slides)
	buf.WriteString("  <PresentationFormat>On-screen Show (4:3)</PresentationFormat>\n")
	buf.WriteString(`</Properties>` + "\n")
	return buf.Bytes()
}

// presentationXML lists the master and the slides. Slide IDs start at 256
// (the PML minimum); relationship IDs follow the rels part: rId1 is the
// master, slides start at rId2.
func presentationXML(slides int) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` + "\n")
	buf.WriteString("  <p:sldMasterIdLst>\n")
	buf.WriteString(`    <p:sldMasterId id="2147483648" r:id="rId1"/>` + "\n")
	buf.WriteString("  </p:sldMasterIdLst>\n")
	if slides > 0 {
		buf.WriteString("  <p:sldIdLst>\n")
		for i := 0; i < slides; i++ {
			fmt.Fprintf(&buf, `    <p:sldId id="%d" r:id="rId%d"/>`+"\n", 256+i, 2+i)
		}
		buf.WriteString("  </p:sldIdLst>\n")
	}
	fmt.Fprintf(&buf, `  <p:sldSz cx="%d" cy="%d"/>`+"\n", int(pageCx), int(pageCy))
	fmt.Fprintf(&buf, `  <p:notesSz cx="%d" cy="%d"/>`+"\n", int(pageCy), int(pageCx))
	buf.WriteString(`</p:presentation>` + "\n")
	return buf.Bytes()
}

func presentationRelsXML(slides int) []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` + "\n")
	buf.WriteString(`  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>` + "\n")
	for i := 0; i < slides; i++ {
		fmt.Fprintf(&buf, `  <Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`+"\n", 2+i, i+1)
	}
	buf.WriteString(`</Relationships>` + "\n")
	return buf.Bytes()
}

// slideMasterXML is a minimal master: an empty shape tree, the standard
// color map, and the single blank layout. Slides carry their own explicit
// formatting, so the master contributes nothing visible.
const slideMasterXML = xmlHeader + `<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld>
    <p:bg>
      <p:bgPr>
        <a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill>
        <a:effectLst/>
      </p:bgPr>
    </p:bg>
    <p:spTree>
      <p:nvGrpSpPr>
        <p:cNvPr id="1" name=""/>
        <p:cNvGrpSpPr/>
        <p:nvPr/>
      </p:nvGrpSpPr>
      <p:grpSpPr/>
    </p:spTree>
  </p:cSld>
  <p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>
  <p:sldLayoutIdLst>
    <p:sldLayoutId id="2147483649" r:id="rId1"/>
  </p:sldLayoutIdLst>
</p:sldMaster>
`

const slideMasterRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>
</Relationships>
`

const slideLayoutXML = xmlHeader + `<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank" preserve="1">
  <p:cSld name="Blank">
    <p:spTree>
      <p:nvGrpSpPr>
        <p:cNvPr id="1" name=""/>
        <p:cNvGrpSpPr/>
        <p:nvPr/>
      </p:nvGrpSpPr>
      <p:grpSpPr/>
    </p:spTree>
  </p:cSld>
  <p:clrMapOvr>
    <a:overrideClrMapping bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>
  </p:clrMapOvr>
</p:sldLayout>
`

const slideLayoutRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>
</Relationships>
`

const slideRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
</Relationships>
`

// themeXML is the smallest theme PowerPoint loads without repair: a color
// scheme, a font scheme, and the three-entry format scheme lists the schema
// requires. Slide shapes never reference it.
const themeXML = xmlHeader + `<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Slidesmith">
  <a:themeElements>
    <a:clrScheme name="Slidesmith">
      <a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>
      <a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>
      <a:dk2><a:srgbClr val="003366"/></a:dk2>
      <a:lt2><a:srgbClr val="F5F5F5"/></a:lt2>
      <a:accent1><a:srgbClr val="003366"/></a:accent1>
      <a:accent2><a:srgbClr val="646464"/></a:accent2>
      <a:accent3><a:srgbClr val="969696"/></a:accent3>
      <a:accent4><a:srgbClr val="808080"/></a:accent4>
      <a:accent5><a:srgbClr val="C8C8C8"/></a:accent5>
      <a:accent6><a:srgbClr val="FAFAFA"/></a:accent6>
      <a:hlink><a:srgbClr val="0563C1"/></a:hlink>
      <a:folHlink><a:srgbClr val="954F72"/></a:folHlink>
    </a:clrScheme>
    <a:fontScheme name="Slidesmith">
      <a:majorFont>
        <a:latin typeface="Calibri"/>
        <a:ea typeface=""/>
        <a:cs typeface=""/>
      </a:majorFont>
      <a:minorFont>
        <a:latin typeface="Calibri"/>
        <a:ea typeface=""/>
        <a:cs typeface=""/>
      </a:minorFont>
    </a:fontScheme>
    <a:fmtScheme name="Slidesmith">
      <a:fillStyleLst>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
      </a:fillStyleLst>
      <a:lnStyleLst>
        <a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
        <a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
        <a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
      </a:lnStyleLst>
      <a:effectStyleLst>
        <a:effectStyle><a:effectLst/></a:effectStyle>
        <a:effectStyle><a:effectLst/></a:effectStyle>
        <a:effectStyle><a:effectLst/></a:effectStyle>
      </a:effectStyleLst>
      <a:bgFillStyleLst>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
      </a:bgFillStyleLst>
    </a:fmtScheme>
  </a:themeElements>
</a:theme>
`
