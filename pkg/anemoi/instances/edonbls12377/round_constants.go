package edonbls12377

// roundConstantsC and roundConstantsD are the literal C/D additive round
// constants for this instance, transcribed (via a Montgomery-to-integer
// conversion) from the upstream round_constants.rs table rather than
// derived from a label. See DESIGN.md for the conversion and provenance.
var roundConstantsC = [][]string{
	{"2070"},
	{"5979696533729491715846134977040519588883641246669155240022600273635977461488"},
	{"495513847329877925653068137864262536848696586186157780263769757231090358152"},
	{"7186659688422290509884223845323191160707758730890509532877511322387936946287"},
	{"7638139888211081053291016400713794304479396956356746593609515867926942792019"},
	{"3912386062997706973497076386767704132776421373802061843489157707334482631282"},
	{"8403640257876412668724710112036017395929125708537170766946726261849158045401"},
	{"7144311256144039293845510493889855894025617612402413902349299621133042227503"},
	{"7182514215913249698164316469581764409668747547836430624880588201715113987729"},
	{"2064647765913261809003549072194959531306508462939302350710187759506947310764"},
	{"1111830253322655282277644650055921780849717035749573022808463288215659079865"},
	{"624906270490530570123511649912590003021731705567433201623948724288933968767"},
	{"3982563198115914606073202721796280336682458024657468680391651734769311832159"},
	{"349691025571765651247840237198899415638051142278869356440794597628890048482"},
	{"3894137167705648476102518191072086827567557895434092866648332795404757566648"},
	{"7104620754793641249611956223457423106796701906507458566940892541464609582842"},
	{"7545192319062831686748546726948149384378118053571103578746406043778552460811"},
	{"5968402335921299868855026895991531777819022253212094777654424912179517385284"},
}

var roundConstantsD = [][]string{
	{"1151517511285686876033930673470210890642168091157372340172986380352373989212"},
	{"5894754118685856030959640120524029200402643703827424062794017367237226537944"},
	{"205137281738069451862795601170246678149627303378140352724850479411874715355"},
	{"3211007526061926139896557467165291487272263438555207966308051413826597186499"},
	{"2052761830574759519618599622380527958787439094790947281986493055748567910940"},
	{"7780180521675770745916563477524005233754958052900126361006487830953262607603"},
	{"6885525322645472792280224857007158862065918261892374234906786811186864058859"},
	{"6679189901307201439330727786363802351756570571717591216626682039660892306985"},
	{"7374124679685367559222705721696347479405481850649735551581774278916389181543"},
	{"888565831499378002236996715015152417877077701214338379094561542164224914641"},
	{"376417838224406224236641083604357831428055874276900109260239155410304474867"},
	{"1085614875797407786885110691933637764341250590022780182102301859776553957245"},
	{"5904023245864816791350805606004384722571228758809403722346849673117100551222"},
	{"3032567973720871531063315344809850858048877316972393833575992555850417265933"},
	{"5419440903073726912294752738814339718516126330691226803835304758342179379174"},
	{"5461495219140710588705026872804696662619234329139835954166244223881817939946"},
	{"6224289225340202686361342623047264548601857589677544053009552272799104547472"},
	{"3159885736928780140495697248111948383694080206206394663393599686296956790946"},
}
