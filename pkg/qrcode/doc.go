// Package qrcode renders QR codes as PNG images, with base64 data-URI output
// for direct HTML embedding. Its main use in this module is rendering
// otpauth:// provisioning URIs locally instead of handing the secret to an
// external chart service.
//
// # Usage
//
// Raw PNG bytes:
//
//	import "github.com/zeroows/otpass/pkg/qrcode"
//
//	png, err := qrcode.Generate("otpauth://totp/MyApp:user@example.com?secret=...", 256)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = os.WriteFile("enroll.png", png, 0644)
//
// Data URI for templates:
//
//	dataURI, err := qrcode.GenerateBase64Image(uri, 256)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf(`<img src="%s" alt="Scan to enroll">`, dataURI)
//
// A size of 0 selects the 256 px default; sizes outside 64-4096 px return
// ErrInvalidSize. Error correction is fixed at Medium, which suits screen and
// print scanning of provisioning URIs.
package qrcode
