// Package formgen augments annotated form classes with a typed view-model property.
//
// # Pipeline
//
// A pass runs three stages over a symbols.Model:
//  1. Discover yields every class carrying the marker annotation
//  2. Validate checks the class derives from the form base and the
//     annotation's generic argument derives from the observable base
//  3. Emit renders a companion partial class from the single Template
//
// Generator.Run wires the stages together, fans validation and emission out
// over a bounded worker pool, and returns artifacts sorted by name so that two
// passes over the same model are byte-identical.
//
// # Ineligible declarations
//
// A marked class that fails either ancestry check is skipped without error.
// The pass records a non-fatal Diagnostic for it instead; callers decide
// whether to surface it. Only a broken invariant (two markers on one class,
// two classes claiming the same artifact name) or cancellation fails a pass.
//
// # Generated shape
//
//	namespace MyApp;
//	public partial class MyViewModel
//	{
//	    public WinformTest.ObservableObjectTest VMDataContext
//	    {
//	        get
//	        {
//	            return (WinformTest.ObservableObjectTest)this.DataContext;
//	        }
//	        set
//	        {
//	            this.DataContext = value;
//	        }
//	    }
//	}
//
// Line endings default to CRLF and there is no trailing newline; both are part
// of the output contract that Check enforces against golden files.
package formgen
