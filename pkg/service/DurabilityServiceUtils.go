package service

import "github.com/sirgallo/durability/pkg/stats"


//=========================================== Durability Service Utils


/*
	persist a stats snapshot into the WAL stats bucket on startup
*/

func (durability *DurabilityService) InitStats() error {
	statObj := stats.CalculateCurrentStats(durability.Monitor, durability.VBucket.PersistedSeqno())

	statSetErr := durability.WAL.SetStat(*statObj)
	if statSetErr != nil {
		Log.Error("unable to set stats in bucket:", statSetErr.Error())
		return statSetErr
	}

	return nil
}
